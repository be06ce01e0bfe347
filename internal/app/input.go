package app

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/cutscene/internal/keys"
	"github.com/depeter/cutscene/internal/movie"
)

// maxPending bounds the queued keys and gestures.
const maxPending = 64

// keyMap maps ebiten keys to the game's key codes. Letters and digits
// use their ASCII codes; other keys are offset past the named codes.
var keyMap = map[ebiten.Key]int{
	ebiten.KeySpace:        keys.Space,
	ebiten.KeyEnter:        keys.Enter,
	ebiten.KeyNumpadEnter:  keys.Enter,
	ebiten.KeyEscape:       keys.Escape,
	ebiten.KeyTab:          keys.Tab,
	ebiten.KeyBackspace:    keys.Backspace,
	ebiten.KeyArrowLeft:    keys.Left,
	ebiten.KeyArrowRight:   keys.Right,
	ebiten.KeyArrowUp:      keys.Up,
	ebiten.KeyArrowDown:    keys.Down,
	ebiten.KeyShift:        keys.Shift,
	ebiten.KeyShiftLeft:    keys.Shift,
	ebiten.KeyShiftRight:   keys.Shift,
	ebiten.KeyControl:      keys.Control,
	ebiten.KeyControlLeft:  keys.Control,
	ebiten.KeyControlRight: keys.Control,
	ebiten.KeyAlt:          keys.Alt,
	ebiten.KeyAltLeft:      keys.Alt,
	ebiten.KeyAltRight:     keys.Alt,
	ebiten.KeyMeta:         keys.Meta,
	ebiten.KeyMetaLeft:     keys.Meta,
	ebiten.KeyMetaRight:    keys.Meta,
}

// keyCode converts an ebiten key to a game key code.
func keyCode(k ebiten.Key) int {
	if c, ok := keyMap[k]; ok {
		return c
	}
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return 'a' + int(k-ebiten.KeyA)
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return '0' + int(k-ebiten.KeyDigit0)
	}
	return keys.Other + int(k)
}

// inputState is written by Update and read by the job goroutine.
type inputState struct {
	mu sync.Mutex

	keys     []int
	gestures []movie.Gesture
	x, y     int
	buttons  movie.Buttons
	quit     bool

	hidden bool
	shape  movie.CursorShape

	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
}

// capture samples this frame's input.
func (s *inputState) capture() {
	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	x, y := ebiten.CursorPosition()

	var buttons movie.Buttons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= movie.ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= movie.ButtonRight
	}

	var gestures []movie.Gesture
	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		gestures = append(gestures, movie.Gesture{Phase: movie.GestureBegan, X: tx, Y: ty})
	}
	s.touchBuf = inpututil.AppendJustReleasedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		gestures = append(gestures, movie.Gesture{Phase: movie.GestureEnded, X: tx, Y: ty})
	}

	altHeld := ebiten.IsKeyPressed(ebiten.KeyAlt)
	closing := ebiten.IsWindowBeingClosed()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.keyBuf {
		code := keyCode(k)
		if keys.Queued(code, altHeld) && len(s.keys) < maxPending {
			s.keys = append(s.keys, code)
		}
	}
	for _, g := range gestures {
		if len(s.gestures) < maxPending {
			s.gestures = append(s.gestures, g)
		}
	}
	s.x, s.y, s.buttons = x, y, buttons
	s.quit = s.quit || closing
}

// applyCursor pushes the requested cursor state to the window.
func (s *inputState) applyCursor() {
	s.mu.Lock()
	visible := !s.hidden && s.shape != movie.CursorNone
	s.mu.Unlock()

	mode := ebiten.CursorModeVisible
	if !visible {
		mode = ebiten.CursorModeHidden
	}
	if ebiten.CursorMode() != mode {
		ebiten.SetCursorMode(mode)
	}
}

// PollKey consumes one key pressed since the last call.
func (f *Frontend) PollKey() (int, bool) {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

// RawPointer returns the pointer position and held buttons of the last
// frame.
func (f *Frontend) RawPointer() (int, int, movie.Buttons) {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x, s.y, s.buttons
}

// ButtonsDown returns the pointer buttons held in the last frame.
func (f *Frontend) ButtonsDown() movie.Buttons {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons
}

// PollGesture consumes one touch gesture.
func (f *Frontend) PollGesture() (movie.Gesture, bool) {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.gestures) == 0 {
		return movie.Gesture{}, false
	}
	g := s.gestures[0]
	s.gestures = s.gestures[1:]
	return g, true
}

// QuitRequested reports whether the window is being closed.
func (f *Frontend) QuitRequested() bool {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

func (f *Frontend) CursorHidden() bool {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hidden
}

func (f *Frontend) ShowCursor() {
	f.setCursor(func(s *inputState) { s.hidden = false })
}

func (f *Frontend) HideCursor() {
	f.setCursor(func(s *inputState) { s.hidden = true })
}

func (f *Frontend) SetCursorShape(shape movie.CursorShape) {
	f.setCursor(func(s *inputState) { s.shape = shape })
}

// setCursor changes the cursor state; the window picks it up next frame.
func (f *Frontend) setCursor(change func(*inputState)) {
	s := &f.input
	s.mu.Lock()
	defer s.mu.Unlock()
	change(s)
}
