//go:build windows

package player

import "syscall"

var foregroundWindow = syscall.NewLazyDLL("user32.dll").NewProc("GetForegroundWindow")

func focusedWindow() int64 {
	hwnd, _, _ := foregroundWindow.Call()
	return int64(hwnd)
}
