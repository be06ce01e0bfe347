package palette

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// calibrationSteps is the step count of the reference fade timed by Init.
	calibrationSteps = 60
	// targetFadeMillis is the wall-clock duration a fade is calibrated to.
	targetFadeMillis = 700
)

// Device is the display hardware palette.
type Device interface {
	SetPalette(p *Palette)
	SetEntries(entries []RGB, start int)
}

// Cycler is ambient color cycling. It must be suspended while a fade runs.
type Cycler interface {
	Enabled() bool
	Enable()
	Disable()
}

// SoundSync is the audio subsystem as seen by the fade loop. While a fade
// blocks the caller, Update is called once per step so background music and
// speech keep being serviced.
type SoundSync interface {
	IsBackgroundEnabled() bool
	IsSpeechEnabled() bool
	Update()
}

// Engine owns the on-screen palette and performs fades.
//
// Fades run on one goroutine while color cycling may rewrite entries from
// another. The device is never called with mu held, since SetPalette may
// wait for the next display frame.
type Engine struct {
	dev    Device
	sound  SoundSync
	cycler Cycler
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	current Palette

	steps int
	hook  func()
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for calibration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock replaces the clock used to time the calibration fade.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine driving dev. sound may be nil when no audio
// subsystem is present.
func NewEngine(dev Device, sound SoundSync, opts ...Option) *Engine {
	e := &Engine{
		dev:    dev,
		sound:  sound,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AttachCycler registers the color cycler that fades suspend. Cycling is
// built on top of the engine, so it is attached after construction.
func (e *Engine) AttachCycler(c Cycler) {
	e.cycler = c
}

// Init snapshots live as the current palette and calibrates the fade step
// count by timing a null fade. Calibration happens once; later calls only
// log and return.
func (e *Engine) Init(live *Palette) {
	if steps := e.Steps(); steps != 0 {
		e.logger.Debug("palette engine already calibrated", zap.Int("fade_steps", steps))
		return
	}
	e.mu.Lock()
	e.current = *live
	e.mu.Unlock()

	resume := e.suspendCycling()
	start := e.now()
	e.installSoundHook()
	e.fade(live, live, calibrationSteps)
	e.hook = nil
	elapsed := e.now().Sub(start).Milliseconds()
	resume()
	if elapsed < 1 {
		elapsed = 1
	}

	steps := int(calibrationSteps * targetFadeMillis / elapsed)
	if steps < 1 {
		steps = 1
	}
	e.mu.Lock()
	e.steps = steps
	e.mu.Unlock()

	e.logger.Info("palette fade calibrated",
		zap.Int64("fade_time_ms", elapsed),
		zap.Int("fade_steps", steps))
}

// Steps returns the calibrated step count, or zero before Init.
func (e *Engine) Steps() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.steps
}

// suspendCycling disables the cycler for the length of a fade and returns
// the function that re-enables it.
func (e *Engine) suspendCycling() func() {
	if e.cycler == nil || !e.cycler.Enabled() {
		return func() {}
	}
	e.cycler.Disable()
	return e.cycler.Enable
}

// Current returns a copy of the palette the display currently shows.
func (e *Engine) Current() Palette {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// FadeTo interpolates the display from the current palette to target over
// the calibrated step count. It blocks until the fade is complete.
func (e *Engine) FadeTo(target *Palette) {
	steps := e.Steps()
	if steps < 1 {
		steps = 1
	}

	resume := e.suspendCycling()

	e.installSoundHook()
	from := e.Current()
	e.fade(&from, target, steps)
	e.hook = nil

	e.mu.Lock()
	e.current = *target
	e.mu.Unlock()
	resume()
}

// SetTo replaces the display palette immediately.
func (e *Engine) SetTo(p *Palette) {
	e.mu.Lock()
	e.current = *p
	e.mu.Unlock()
	e.dev.SetPalette(p)
}

// SetEntries replaces entries start..end inclusive with entries[0..end-start].
// Bounds outside the palette are a programming error.
func (e *Engine) SetEntries(entries []RGB, start, end int) {
	if start < 0 || end >= Size || start > end {
		panic(fmt.Sprintf("palette: entry range %d..%d out of bounds", start, end))
	}
	n := end - start + 1
	if len(entries) < n {
		panic(fmt.Sprintf("palette: %d entries for range %d..%d", len(entries), start, end))
	}
	e.mu.Lock()
	copy(e.current[start:end+1], entries[:n])
	e.mu.Unlock()
	e.dev.SetEntries(entries[:n], start)
}

func (e *Engine) installSoundHook() {
	if e.sound == nil {
		return
	}
	if e.sound.IsBackgroundEnabled() || e.sound.IsSpeechEnabled() {
		e.hook = e.sound.Update
	}
}

// fade pushes steps intermediate palettes to the device. Step i of n is
// from + (to-from)*i/n per channel, so step n is exactly to.
func (e *Engine) fade(from, to *Palette, steps int) {
	var frame Palette
	for i := 1; i <= steps; i++ {
		for j := range frame {
			frame[j] = RGB{
				R: lerp(from[j].R, to[j].R, i, steps),
				G: lerp(from[j].G, to[j].G, i, steps),
				B: lerp(from[j].B, to[j].B, i, steps),
			}
		}
		e.dev.SetPalette(&frame)
		if e.hook != nil {
			e.hook()
		}
	}
}

func lerp(a, b uint8, i, n int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*i/n)
}
