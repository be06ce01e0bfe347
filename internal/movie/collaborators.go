package movie

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

import "github.com/depeter/cutscene/internal/palette"

// WindowHandle identifies a display surface.
type WindowHandle int

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Player streams movie frames into a surface.
type Player interface {
	SetVolume(level int)
	// SetSubtitleSource installs the function mapping a movie path to its
	// subtitle path.
	SetSubtitleSource(resolve func(moviePath string) string)
	SetFlags(flags int)
	Start(win WindowHandle, path string) error
	IsPlaying() bool
	// PollOnce services the player once without blocking.
	PollOnce()
	Stop() error
}

// Mixer is the background music and speech audio.
type Mixer interface {
	IsBackgroundEnabled() bool
	BackgroundVolume() int
	StopBackground()
	PauseBackground()
	UnpauseBackground()
	IsSpeechEnabled() bool
}

// Surfaces creates and destroys display regions.
type Surfaces interface {
	ScreenSize() (w, h int)
	// CreateModal creates a surface that captures all input until destroyed.
	CreateModal(r Rect) (WindowHandle, error)
	Draw(win WindowHandle)
	Destroy(win WindowHandle) error
	// RedrawAll repaints the whole screen.
	RedrawAll()
}

// Buttons is a pointer button bitmask.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
)

// GesturePhase is the phase of a touch gesture.
type GesturePhase int

const (
	GestureBegan GesturePhase = iota
	GestureChanged
	GestureEnded
)

// Gesture is a touch gesture event.
type Gesture struct {
	Phase GesturePhase
	X, Y  int
}

// CursorShape selects the mouse cursor image.
type CursorShape int

const (
	CursorArrow CursorShape = iota
	CursorNone
)

// Input is the keyboard, pointer and touch backend.
type Input interface {
	// PollKey consumes one pending key press.
	PollKey() (key int, ok bool)
	// RawPointer samples the pointer position and held buttons.
	RawPointer() (x, y int, buttons Buttons)
	ButtonsDown() Buttons
	// PollGesture consumes one pending touch gesture.
	PollGesture() (Gesture, bool)
	// QuitRequested reports the process-wide quit request.
	QuitRequested() bool

	CursorHidden() bool
	ShowCursor()
	HideCursor()
	SetCursorShape(shape CursorShape)
}

// Pump yields to the platform event loop. Every wait in a playback is a
// poll preceded by one Pump.
type Pump interface {
	Pump()
}

// AssetProbe checks game data files.
type AssetProbe interface {
	Exists(path string) bool
}

// Settings are the user preferences consulted during playback.
type Settings interface {
	Language() string
	SubtitlesEnabled() bool
}

// TextStyle is the window text state subtitles draw with.
type TextStyle interface {
	// TextColor returns the color packed as RGB555.
	TextColor() uint16
	SetTextColor(r, g, b float64)
	Font() int
	SetFont(id int)
}

// ColorTables loads the game color tables.
type ColorTables interface {
	LoadColorTable(path string) error
	Live() palette.Palette
}

// Fader is the palette fade engine.
type Fader interface {
	Current() palette.Palette
	FadeTo(target *palette.Palette)
	SetTo(p *palette.Palette)
}

// Cycler is ambient palette color cycling.
type Cycler interface {
	Enabled() bool
	Enable()
	Disable()
}

// Effects is a visual or audio layer synchronized with a movie.
type Effects interface {
	Start(moviePath string)
	Stop()
}
