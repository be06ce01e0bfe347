package app

import (
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/assets/icon"
	"github.com/depeter/cutscene/internal/config"
)

// Ticker is advanced once per frame on the game goroutine.
type Ticker interface {
	Tick(now time.Time)
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(now time.Time)

func (fn TickerFunc) Tick(now time.Time) { fn(now) }

// Frontend implements ebiten.Game. It hosts one job, such as a movie
// playback, on its own goroutine and serves it the display, input and
// event pump; the game exits when the job returns.
type Frontend struct {
	Config *config.Config

	Width, Height int

	logger  *zap.Logger
	tickers []Ticker
	frames  frameClock

	input    inputState
	display  display
	surfaces *Surfaces

	once   sync.Once
	job    func() error
	done   chan struct{}
	jobErr error
}

// NewFrontend creates the frontend with the configured window size.
func NewFrontend(cfg *config.Config, logger *zap.Logger) *Frontend {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Frontend{
		Config: cfg,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
		logger: logger,
		done:   make(chan struct{}),
	}
	f.frames.init()
	f.display.init(f.Width, f.Height)
	f.surfaces = &Surfaces{w: f.Width, h: f.Height, display: &f.display}
	return f
}

// Surfaces returns the movie surface manager.
func (f *Frontend) Surfaces() *Surfaces {
	return f.surfaces
}

// AddTicker registers t to be advanced every frame.
func (f *Frontend) AddTicker(t Ticker) {
	f.tickers = append(f.tickers, t)
}

// Run opens the window and runs job until it returns. It must be called
// from the main goroutine.
func (f *Frontend) Run(job func() error) error {
	f.job = job

	ebiten.SetWindowSize(f.Width, f.Height)
	ebiten.SetWindowTitle("Cutscene")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(f.Config.UI.Fullscreen)

	err := ebiten.RunGame(f)
	f.frames.stop()
	// The job never started if the loop failed before its first frame.
	f.once.Do(func() { close(f.done) })
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	<-f.done
	return f.jobErr
}

func (f *Frontend) startJob() {
	f.frames.start()
	go func() {
		defer close(f.done)
		f.jobErr = f.job()
	}()
}

func (f *Frontend) Update() error {
	f.once.Do(f.startJob)

	select {
	case <-f.done:
		return ebiten.Termination
	default:
	}

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	f.input.capture()
	f.input.applyCursor()

	now := time.Now()
	for _, t := range f.tickers {
		t.Tick(now)
	}

	f.frames.tick()
	return nil
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.surfaces.covering() {
		// mpv renders into the window while a movie surface is up.
		screen.Fill(blackColor)
		return
	}
	f.display.draw(screen)
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.Width, f.Height
}

// Pump waits for the next frame. Outside Run it returns at once.
func (f *Frontend) Pump() {
	f.frames.wait()
}

// frameClock lets other goroutines wait for the next Update.
type frameClock struct {
	mu      sync.Mutex
	next    chan struct{}
	running bool
}

func (c *frameClock) init() {
	c.next = make(chan struct{})
}

func (c *frameClock) start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
}

func (c *frameClock) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.running = false
		close(c.next)
		c.next = make(chan struct{})
	}
}

func (c *frameClock) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	close(c.next)
	c.next = make(chan struct{})
}

func (c *frameClock) wait() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	next := c.next
	c.mu.Unlock()
	<-next
}
