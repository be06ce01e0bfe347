package movie

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/palette"
)

var (
	// ErrUnknownMovie is returned for IDs outside the catalogue.
	ErrUnknownMovie = errors.New("unknown movie")
	// ErrMovieNotFound is returned when the movie asset is missing.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrSurface is returned when the movie surface cannot be created.
	ErrSurface = errors.New("create movie surface")
)

const (
	movieWidth  = 640
	movieHeight = 480
)

// State is the playback state machine position.
type State int

const (
	StateIdle State = iota
	StateResolving
	StatePrepared
	StatePlaying
	StateFinishing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StatePrepared:
		return "prepared"
	case StatePlaying:
		return "playing"
	case StateFinishing:
		return "finishing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Deps are the collaborators of an Orchestrator. Effects and Logger may be
// nil; everything else is required.
type Deps struct {
	Player   Player
	Mixer    Mixer
	Surfaces Surfaces
	Input    Input
	Pump     Pump
	Assets   AssetProbe
	Settings Settings
	Text     TextStyle
	Colors   ColorTables
	Fader    Fader
	Cycler   Cycler
	Effects  Effects
	Registry *Registry
	Logger   *zap.Logger
}

// Orchestrator plays movies. One playback runs at a time; Play must not be
// called concurrently.
type Orchestrator struct {
	player   Player
	mixer    Mixer
	surfaces Surfaces
	input    Input
	pump     Pump
	assets   AssetProbe
	settings Settings
	text     TextStyle
	colors   ColorTables
	fader    Fader
	cycler   Cycler
	effects  Effects
	registry *Registry
	logger   *zap.Logger

	state State
}

// session is the state saved by one Play call and restored before it
// returns.
type session struct {
	id           ID
	path         string
	subtitlePath string
	subtitles    bool
	win          WindowHandle

	cyclingWasEnabled bool
	cursorWasHidden   bool
	oldTextColor      uint16
	oldFont           int
}

// NewOrchestrator creates an orchestrator over d.
func NewOrchestrator(d Deps) *Orchestrator {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := d.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	return &Orchestrator{
		player:   d.Player,
		mixer:    d.Mixer,
		surfaces: d.Surfaces,
		input:    d.Input,
		pump:     d.Pump,
		assets:   d.Assets,
		settings: d.Settings,
		text:     d.Text,
		colors:   d.Colors,
		fader:    d.Fader,
		cycler:   d.Cycler,
		effects:  d.Effects,
		registry: registry,
		logger:   logger,
	}
}

// Init configures the player and clears the playback history.
func (o *Orchestrator) Init() {
	volume := 0
	if o.mixer.IsBackgroundEnabled() {
		volume = o.mixer.BackgroundVolume()
	}
	o.player.SetVolume(volume)
	o.player.SetSubtitleSource(o.subtitleSource)
	o.registry.Reset()
}

// Reset clears the playback history.
func (o *Orchestrator) Reset() {
	o.registry.Reset()
}

// HasPlayed reports whether id has been played.
func (o *Orchestrator) HasPlayed(id ID) bool {
	return o.registry.HasPlayed(id)
}

// Registry returns the playback history.
func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// State returns the current state machine position.
func (o *Orchestrator) State() State {
	return o.state
}

func (o *Orchestrator) subtitleSource(moviePath string) string {
	return SubtitlePath(o.settings.Language(), moviePath)
}

// Play shows movie id and blocks until it ends or is skipped.
//
// Errors before the movie starts (unknown or missing movie, surface
// failure) leave cursor, color cycling and history exactly as they were.
// Skipping a movie is not an error.
func (o *Orchestrator) Play(id ID, flags Flags) error {
	if !id.Valid() {
		return fmt.Errorf("play %s: %w", id, ErrUnknownMovie)
	}
	log := o.logger.With(zap.Stringer("movie", id), zap.Stringer("flags", flags))

	o.state = StateResolving
	s := &session{id: id, path: id.AssetPath()}
	if !o.assets.Exists(s.path) {
		o.state = StateIdle
		log.Warn("movie asset missing", zap.String("path", s.path))
		return fmt.Errorf("play %s: %w", s.path, ErrMovieNotFound)
	}

	o.state = StatePrepared
	if err := o.prepare(s, flags, log); err != nil {
		o.state = StateIdle
		return err
	}

	o.state = StatePlaying
	if o.effects != nil {
		o.effects.Start(s.path)
	}
	startErr := o.player.Start(s.win, s.path)
	if startErr != nil {
		log.Error("player failed to start", zap.Error(startErr))
	} else {
		o.awaitEnd()
	}

	o.state = StateFinishing
	if err := o.finish(s, startErr == nil); err != nil {
		log.Warn("movie teardown incomplete", zap.Error(err))
	}

	if flags&FlagPauseMusic != 0 {
		o.mixer.UnpauseBackground()
	}

	if flags&FlagFadeOut != 0 {
		if !s.subtitles {
			if err := o.colors.LoadColorTable(LivePalettePath); err != nil {
				log.Warn("reload color table", zap.Error(err))
			}
		}
		live := o.colors.Live()
		o.fader.FadeTo(&live)
	}

	o.state = StateIdle
	if startErr != nil {
		return fmt.Errorf("play %s: %w", s.path, startErr)
	}
	log.Info("movie finished")
	return nil
}

// prepare creates the movie surface, silences music, picks subtitles and
// takes over the cursor. On error nothing shared has been changed.
func (o *Orchestrator) prepare(s *session, flags Flags, log *zap.Logger) error {
	var before palette.Palette
	if flags&FlagFadeIn != 0 {
		before = o.fader.Current()
		o.fader.FadeTo(&palette.Black)
	}

	sw, sh := o.surfaces.ScreenSize()
	rect := Rect{
		X: (sw - movieWidth) / 2,
		Y: (sh - movieHeight) / 2,
		W: movieWidth,
		H: movieHeight,
	}
	win, err := o.surfaces.CreateModal(rect)
	if err != nil {
		if flags&FlagFadeIn != 0 {
			o.fader.SetTo(&before)
		}
		log.Error("movie surface", zap.Error(err))
		return fmt.Errorf("play %s: %w: %w", s.path, ErrSurface, err)
	}
	s.win = win

	// Stop wins when both music flags are set.
	if flags&FlagStopMusic != 0 {
		o.mixer.StopBackground()
	} else if flags&FlagPauseMusic != 0 {
		o.mixer.PauseBackground()
	}

	o.surfaces.Draw(win)

	playerFlags := PlayerFlagBase
	s.subtitles = ForcesSubtitles(s.id) || o.settings.SubtitlesEnabled()
	if s.subtitles {
		s.subtitlePath = SubtitlePath(o.settings.Language(), s.path)
		if o.assets.Exists(s.subtitlePath) {
			playerFlags |= PlayerFlagSubtitles
		} else {
			log.Info("subtitles unavailable", zap.String("path", s.subtitlePath))
			s.subtitles = false
		}
	}
	o.player.SetFlags(playerFlags)

	if s.subtitles {
		if err := o.colors.LoadColorTable(SubtitlePalettePath); err != nil {
			log.Warn("subtitle color table", zap.Error(err))
		}
		s.oldTextColor = o.text.TextColor()
		o.text.SetTextColor(1, 1, 1)
		s.oldFont = o.text.Font()
		o.text.SetFont(subtitleFont)
	}

	s.cursorWasHidden = o.input.CursorHidden()
	if s.cursorWasHidden {
		o.input.SetCursorShape(CursorNone)
		o.input.ShowCursor()
	}

	for o.input.ButtonsDown() != 0 {
		o.pump.Pump()
	}

	o.input.HideCursor()
	s.cyclingWasEnabled = o.cycler.Enabled()
	o.cycler.Disable()
	return nil
}

// awaitEnd polls until the movie ends or the user skips it.
func (o *Orchestrator) awaitEnd() {
	var d debouncer
	in := sampler{player: o.player, input: o.input}
	for {
		o.pump.Pump()
		o.player.PollOnce()
		if d.step(in.sample()) {
			return
		}
	}
}

// finish undoes prepare. played is false when the player never started.
func (o *Orchestrator) finish(s *session, played bool) error {
	var err error
	err = multierr.Append(err, o.player.Stop())
	if o.effects != nil {
		o.effects.Stop()
	}
	o.player.PollOnce()
	o.fader.SetTo(&palette.Black)

	if played {
		o.registry.MarkPlayed(s.id)
	}

	if s.cyclingWasEnabled {
		o.cycler.Enable()
	}

	o.input.SetCursorShape(CursorArrow)
	if !s.cursorWasHidden {
		o.input.ShowCursor()
	}

	if s.subtitles {
		err = multierr.Append(err, o.colors.LoadColorTable(LivePalettePath))
		o.text.SetFont(s.oldFont)
		o.text.SetTextColor(UnpackTextColor(s.oldTextColor))
	}

	err = multierr.Append(err, o.surfaces.Destroy(s.win))
	o.surfaces.RedrawAll()
	return err
}
