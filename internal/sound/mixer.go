// Package sound plays background music and reports the audio state the
// movie player and palette fades consult.
package sound

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/config"
)

const (
	sampleRate = beep.SampleRate(22050)

	// MaxVolume is the top of the mixer volume scale.
	MaxVolume = 32767
)

// Opener opens game data files.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// Output is the audio device streams are played on.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, n int) error { return speaker.Init(sr, n) }
func (speakerOutput) Play(s beep.Streamer)                 { speaker.Play(s) }
func (speakerOutput) Lock()                                { speaker.Lock() }
func (speakerOutput) Unlock()                              { speaker.Unlock() }

// Option configures a Mixer.
type Option func(*Mixer)

// WithOutput plays on out instead of the system speaker.
func WithOutput(out Output) Option {
	return func(m *Mixer) { m.out = out }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mixer) { m.logger = l }
}

// Mixer owns the background music stream.
type Mixer struct {
	mu          sync.Mutex
	out         Output
	files       Opener
	logger      *zap.Logger
	initialized bool

	music     bool
	speech    bool
	volume    int
	musicPath string

	mixer      *beep.Mixer
	background *beep.Ctrl
	gain       *effects.Volume
	stream     beep.StreamSeekCloser
	track      string
	finished   bool
}

// New creates a mixer from the sound settings. Nothing is audible until
// Init succeeds.
func New(cfg config.SoundConfig, files Opener, opts ...Option) *Mixer {
	m := &Mixer{
		out:       speakerOutput{},
		files:     files,
		logger:    zap.NewNop(),
		music:     cfg.Music,
		speech:    cfg.Speech,
		volume:    clampVolume(cfg.MusicVolume),
		musicPath: cfg.MusicPath,
		mixer:     &beep.Mixer{},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Init opens the audio device. A mixer whose device fails to open stays
// silent and reports music and speech as disabled.
func (m *Mixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := m.out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.logger.Warn("audio device unavailable", zap.Error(err))
		return fmt.Errorf("init audio: %w", err)
	}
	m.out.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// IsBackgroundEnabled reports whether background music is audible.
func (m *Mixer) IsBackgroundEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && m.music
}

// IsSpeechEnabled reports whether speech is audible.
func (m *Mixer) IsSpeechEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && m.speech
}

// BackgroundVolume returns the music volume on the 0..MaxVolume scale.
func (m *Mixer) BackgroundVolume() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetBackgroundVolume changes the music volume.
func (m *Mixer) SetBackgroundVolume(v int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(v)
	if m.gain != nil {
		m.locked(func() { applyGain(m.gain, m.volume) })
	}
}

// PlayBackground starts a WAV track from the music directory, replacing
// the current one.
func (m *Mixer) PlayBackground(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.music {
		return nil
	}

	path := m.musicPath + name + ".wav"
	f, err := m.files.Open(path)
	if err != nil {
		return fmt.Errorf("open music %s: %w", path, err)
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode music %s: %w", path, err)
	}

	m.stopLocked()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}
	m.gain = &effects.Volume{Streamer: s, Base: 2}
	applyGain(m.gain, m.volume)
	m.background = &beep.Ctrl{Streamer: beep.Seq(m.gain, beep.Callback(m.markFinished))}
	m.stream = stream
	m.track = name
	m.finished = false

	m.locked(func() { m.mixer.Add(m.background) })
	m.logger.Debug("background music started", zap.String("track", name))
	return nil
}

// Track returns the name of the playing background track.
func (m *Mixer) Track() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track
}

// StopBackground ends the background track.
func (m *Mixer) StopBackground() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// PauseBackground silences the background track, keeping its position.
func (m *Mixer) PauseBackground() {
	m.setPaused(true)
}

// UnpauseBackground resumes a paused background track.
func (m *Mixer) UnpauseBackground() {
	m.setPaused(false)
}

// Paused reports whether the background track is paused.
func (m *Mixer) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.background == nil {
		return false
	}
	var paused bool
	m.locked(func() { paused = m.background.Paused })
	return paused
}

func (m *Mixer) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.background == nil {
		return
	}
	m.locked(func() { m.background.Paused = paused })
}

// Update releases a background track that has played to its end. It is
// called once per frame of long blocking work such as palette fades.
func (m *Mixer) Update() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var done bool
	m.locked(func() { done = m.finished })
	if done && m.stream != nil {
		m.logger.Debug("background music finished", zap.String("track", m.track))
		m.stopLocked()
	}
}

// Close stops playback and releases the track.
func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked()
}

func (m *Mixer) stopLocked() error {
	if m.background == nil {
		return nil
	}
	m.locked(func() {
		m.background.Streamer = nil
		m.mixer.Clear()
	})
	err := m.stream.Close()
	m.background = nil
	m.gain = nil
	m.stream = nil
	m.track = ""
	m.finished = false
	return err
}

// markFinished runs on the audio goroutine with the output locked.
func (m *Mixer) markFinished() {
	m.finished = true
}

// locked runs fn with the audio output locked, when one is running.
func (m *Mixer) locked(fn func()) {
	if !m.initialized {
		fn()
		return
	}
	m.out.Lock()
	defer m.out.Unlock()
	fn()
}

func clampVolume(v int) int {
	return min(max(v, 0), MaxVolume)
}

// applyGain maps a 0..MaxVolume level to beep's exponential gain.
func applyGain(g *effects.Volume, level int) {
	if level <= 0 {
		g.Silent = true
		g.Volume = 0
		return
	}
	g.Silent = false
	g.Volume = math.Log2(float64(level) / MaxVolume)
}
