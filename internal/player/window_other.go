//go:build !linux && !windows

package player

// focusedWindow has no native lookup here.
func focusedWindow() int64 {
	return 0
}
