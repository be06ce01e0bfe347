package player

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gen2brain/go-mpv"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/config"
	"github.com/depeter/cutscene/internal/movie"
	"github.com/depeter/cutscene/internal/subtitle"
)

// maxVolume is the top of the game volume scale.
const maxVolume = 32767

// Resolver maps game paths to host file paths.
type Resolver interface {
	Resolve(gamePath string) (string, error)
}

// Player wraps libmpv for movie playback.
type Player struct {
	m      *mpv.Mpv
	mu     sync.Mutex
	files  Resolver
	logger *zap.Logger
	window func() (int64, error)
	subs   config.SubtitleConfig

	subtitleSource func(moviePath string) string
	flags          int
	playing        bool
	started        bool
	wid            int64
	cues           []subtitle.Cue
	subtitleFile   string
}

// New creates and initializes a new mpv player instance.
func New(cfg *config.Config, files Resolver, logger *zap.Logger) (*Player, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := mpv.New()
	p := &Player{m: m, files: files, logger: logger, window: gameWindow, subs: cfg.Subtitles}

	// The orchestrator owns input and window state.
	p.must(m.SetOptionString("hwdec", cfg.Video.HWAccel))
	p.must(m.SetOptionString("vo", "gpu"))
	p.must(m.SetOptionString("osc", "no"))
	p.must(m.SetOptionString("input-default-bindings", "no"))
	p.must(m.SetOptionString("input-vo-keyboard", "no"))
	p.must(m.SetOptionString("keep-open", "no"))
	p.must(m.SetOptionString("idle", "yes"))
	p.must(m.SetOptionString("sid", "no"))

	p.applySubtitleStyle()

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}
	return p, nil
}

func (p *Player) must(err error) {
	if err != nil {
		p.logger.Warn("mpv option", zap.Error(err))
	}
}

// SetVolume sets the movie volume on the 0..32767 game scale.
func (p *Player) SetVolume(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.must(p.m.SetPropertyString("volume", strconv.Itoa(mpvVolume(level))))
}

// mpvVolume maps the game volume scale onto mpv's 0..100 percent.
func mpvVolume(level int) int {
	level = min(max(level, 0), maxVolume)
	return (level*100 + maxVolume/2) / maxVolume
}

// SetSubtitleSource installs the movie to subtitle path mapping.
func (p *Player) SetSubtitleSource(resolve func(moviePath string) string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subtitleSource = resolve
}

// SetFlags sets the options for the next Start.
func (p *Player) SetFlags(flags int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flags = flags
}

// Start begins playback of a game movie path in the window. Subtitles are
// loaded once mpv reports the file's frame rate.
func (p *Player) Start(win movie.WindowHandle, gamePath string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	path, err := p.files.Resolve(gamePath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", gamePath, err)
	}

	p.embed()

	p.cues = nil
	if p.flags&movie.PlayerFlagSubtitles != 0 && p.subtitleSource != nil {
		p.cues = p.loadCues(p.subtitleSource(gamePath))
	}

	if err := p.m.Command([]string{"loadfile", path}); err != nil {
		return fmt.Errorf("loadfile %s: %w", path, err)
	}
	p.playing = true
	p.started = false
	p.logger.Debug("movie started",
		zap.String("path", path),
		zap.Int("window", int(win)),
		zap.Int("flags", p.flags),
		zap.Int("subtitles", len(p.cues)))
	return nil
}

// IsPlaying reports whether the movie is still running.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// PollOnce handles every pending mpv event without blocking.
func (p *Player) PollOnce() {
	for {
		ev := p.m.WaitEvent(0)
		if ev == nil || ev.EventID == mpv.EventNone {
			return
		}
		p.handle(ev)
	}
}

func (p *Player) handle(ev *mpv.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.EventID {
	case mpv.EventStart:
		p.started = p.playing

	case mpv.EventFileLoaded:
		if len(p.cues) > 0 {
			p.attachSubtitles()
		}

	case mpv.EventEnd:
		// An end-file for the previous movie can still be queued when
		// the next one is loaded.
		if !p.started {
			return
		}
		p.started = false
		p.playing = false
		if ev.Data != nil {
			ef := ev.EndFile()
			p.logger.Debug("mpv end-file", zap.Any("reason", ef.Reason))
		}
		p.removeSubtitleFile()

	case mpv.EventShutdown:
		p.playing = false
	}
}

// Stop stops playback.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return nil
	}
	p.playing = false
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removeSubtitleFile()
	p.m.TerminateDestroy()
}
