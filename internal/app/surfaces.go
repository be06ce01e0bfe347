package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/depeter/cutscene/internal/movie"
)

// ErrModalOpen is returned when a second modal surface is requested.
var ErrModalOpen = errors.New("a modal surface is already open")

// Surfaces tracks the modal surfaces movies play in. At most one is open.
type Surfaces struct {
	mu      sync.Mutex
	w, h    int
	display *display

	next    movie.WindowHandle
	open    movie.WindowHandle
	rect    movie.Rect
	visible bool
}

func (s *Surfaces) covering() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open != 0 && s.visible
}

// ScreenSize returns the logical screen size.
func (s *Surfaces) ScreenSize() (int, int) {
	return s.w, s.h
}

// CreateModal opens a surface over r that takes over the screen until it
// is destroyed.
func (s *Surfaces) CreateModal(r movie.Rect) (movie.WindowHandle, error) {
	if r.W <= 0 || r.H <= 0 {
		return 0, fmt.Errorf("create surface %dx%d: empty rectangle", r.W, r.H)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open != 0 {
		return 0, ErrModalOpen
	}
	s.next++
	s.open = s.next
	s.rect = r
	s.visible = false
	return s.open, nil
}

// Draw shows the surface.
func (s *Surfaces) Draw(win movie.WindowHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if win == s.open {
		s.visible = true
	}
}

// Destroy closes the surface.
func (s *Surfaces) Destroy(win movie.WindowHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if win == 0 || win != s.open {
		return fmt.Errorf("destroy surface %d: not open", win)
	}
	s.open = 0
	s.visible = false
	return nil
}

// RedrawAll repaints the backdrop on the next frame.
func (s *Surfaces) RedrawAll() {
	s.display.invalidate()
}
