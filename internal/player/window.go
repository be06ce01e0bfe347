package player

import (
	"errors"
	"strconv"

	"go.uber.org/zap"
)

var errNoWindow = errors.New("no native game window")

// gameWindow returns the native handle of the game window. The game window
// has input focus while a movie is being started.
func gameWindow() (int64, error) {
	wid := focusedWindow()
	// X11 reports None (0) and PointerRoot (1) when no window has focus.
	if wid <= 1 {
		return 0, errNoWindow
	}
	return wid, nil
}

// embed points mpv at the game window once. Without one mpv opens its own.
func (p *Player) embed() {
	if p.wid != 0 {
		return
	}
	wid, err := p.window()
	if err != nil {
		p.logger.Warn("mpv opens its own window", zap.Error(err))
		return
	}
	if err := p.m.SetOptionString("wid", strconv.FormatInt(wid, 10)); err != nil {
		p.logger.Warn("embed mpv window", zap.Error(err))
		return
	}
	p.wid = wid
}
