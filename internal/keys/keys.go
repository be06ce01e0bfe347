// Package keys holds the game's key codes and decides which key presses
// reach the game's key queue.
package keys

// Named key codes. Letters and digits use their ASCII codes.
const (
	Backspace = 0x08
	Tab       = '\t'
	Enter     = '\r'
	Escape    = 0x1B
	Space     = ' '

	Left  = 0x14B
	Right = 0x14D
	Up    = 0x148
	Down  = 0x150

	Shift   = 0x12A
	Control = 0x11D
	Alt     = 0x138
	Meta    = 0x15B

	// Other is the base code for keys without a name of their own.
	Other = 0x200
)

// IsModifier reports whether code is a modifier key.
func IsModifier(code int) bool {
	switch code {
	case Shift, Control, Alt, Meta:
		return true
	}
	return false
}

// Queued reports whether a press of code is delivered to the game.
// Modifiers alone are not key presses, and Enter while Alt is held is the
// window's fullscreen toggle.
func Queued(code int, altHeld bool) bool {
	if IsModifier(code) {
		return false
	}
	return !(code == Enter && altHeld)
}
