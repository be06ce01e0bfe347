//go:build linux

package player

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>

static long input_focus(void) {
	Display *dpy = XOpenDisplay(NULL);
	if (dpy == NULL) {
		return 0;
	}
	Window focus;
	int revert;
	XGetInputFocus(dpy, &focus, &revert);
	XCloseDisplay(dpy);
	return (long)focus;
}
*/
import "C"

func focusedWindow() int64 {
	return int64(C.input_focus())
}
