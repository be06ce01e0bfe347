package palette

import (
	"math/rand"
	"testing"
	"time"
)

type recordingDevice struct {
	frames  []Palette
	shown   Palette
	cycling func() bool
	cycled  int
}

func (d *recordingDevice) SetPalette(p *Palette) {
	d.shown = *p
	d.frames = append(d.frames, *p)
	if d.cycling != nil && d.cycling() {
		d.cycled++
	}
}

func (d *recordingDevice) SetEntries(entries []RGB, start int) {
	copy(d.shown[start:], entries)
}

type fakeCycler struct {
	enabled bool
	toggles int
}

func (c *fakeCycler) Enabled() bool { return c.enabled }
func (c *fakeCycler) Enable()       { c.enabled = true; c.toggles++ }
func (c *fakeCycler) Disable()      { c.enabled = false; c.toggles++ }

type fakeSound struct {
	music, speech bool
	updates       int
}

func (s *fakeSound) IsBackgroundEnabled() bool { return s.music }
func (s *fakeSound) IsSpeechEnabled() bool     { return s.speech }
func (s *fakeSound) Update()                   { s.updates++ }

// steppingClock advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Unix(1_000_000, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func randomPalette(r *rand.Rand) Palette {
	var p Palette
	for i := range p {
		p[i] = RGB{
			R: uint8(r.Intn(MaxIntensity + 1)),
			G: uint8(r.Intn(MaxIntensity + 1)),
			B: uint8(r.Intn(MaxIntensity + 1)),
		}
	}
	return p
}

func TestInitCalibration(t *testing.T) {
	tests := []struct {
		name  string
		step  time.Duration
		steps int
	}{
		{name: "zero duration is guarded", step: 0, steps: 42000},
		{name: "reference duration", step: 700 * time.Millisecond, steps: 60},
		{name: "slow display", step: 1400 * time.Millisecond, steps: 30},
		{name: "very slow display clamps to one step", step: time.Minute, steps: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(&recordingDevice{}, nil, WithClock(steppingClock(tt.step)))
			e.Init(&White)
			if e.Steps() != tt.steps {
				t.Errorf("Steps() = %d, want %d", e.Steps(), tt.steps)
			}
			if e.Current() != White {
				t.Error("Init should snapshot the live palette as current")
			}
		})
	}
}

func TestInitIsOnce(t *testing.T) {
	e := NewEngine(&recordingDevice{}, nil, WithClock(steppingClock(700*time.Millisecond)))
	e.Init(&Black)
	e.Init(&White)
	if e.Steps() != 60 {
		t.Errorf("Steps() = %d, want 60", e.Steps())
	}
	if e.Current() != Black {
		t.Error("second Init must not replace the current palette")
	}
}

func TestInitSuspendsCycling(t *testing.T) {
	cyc := &fakeCycler{enabled: true}
	dev := &recordingDevice{cycling: cyc.Enabled}
	e := NewEngine(dev, nil, WithClock(steppingClock(700*time.Millisecond)))
	e.AttachCycler(cyc)

	e.Init(&White)

	if len(dev.frames) != calibrationSteps {
		t.Fatalf("calibration pushed %d frames, want %d", len(dev.frames), calibrationSteps)
	}
	if dev.cycled != 0 {
		t.Errorf("cycling was active during %d calibration steps", dev.cycled)
	}
	if !cyc.enabled || cyc.toggles != 2 {
		t.Errorf("cycler enabled = %v after %d toggles, want re-enabled after 2", cyc.enabled, cyc.toggles)
	}
}

func TestFadeToLandsExactly(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		a, b := randomPalette(r), randomPalette(r)

		dev := &recordingDevice{}
		e := NewEngine(dev, nil, WithClock(steppingClock(700*time.Millisecond)))
		e.Init(&a)
		dev.frames = nil

		e.FadeTo(&b)

		if len(dev.frames) != e.Steps() {
			t.Fatalf("fade pushed %d frames, want %d", len(dev.frames), e.Steps())
		}
		if e.Current() != b {
			t.Fatal("current palette differs from fade target")
		}
		if dev.shown != b {
			t.Fatal("device palette differs from fade target")
		}
	}
}

func TestFadeToIsMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	a, b := randomPalette(r), randomPalette(r)

	dev := &recordingDevice{}
	e := NewEngine(dev, nil, WithClock(steppingClock(700*time.Millisecond)))
	e.Init(&a)
	dev.frames = nil
	e.FadeTo(&b)

	prev := a
	for step, frame := range dev.frames {
		for j := range frame {
			if !between(prev[j].R, frame[j].R, b[j].R) ||
				!between(prev[j].G, frame[j].G, b[j].G) ||
				!between(prev[j].B, frame[j].B, b[j].B) {
				t.Fatalf("step %d entry %d moved away from target: %v -> %v (target %v)",
					step, j, prev[j], frame[j], b[j])
			}
		}
		prev = frame
	}
}

// between reports whether cur lies on the closed segment from prev to target.
func between(prev, cur, target uint8) bool {
	if prev <= target {
		return prev <= cur && cur <= target
	}
	return target <= cur && cur <= prev
}

func TestConsecutiveFades(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	a, b := randomPalette(r), randomPalette(r)

	dev := &recordingDevice{}
	e := NewEngine(dev, nil, WithClock(steppingClock(700*time.Millisecond)))
	e.Init(&Black)
	e.FadeTo(&a)
	e.FadeTo(&b)

	if dev.shown != b || e.Current() != b {
		t.Error("after fading to A then B the display should show B")
	}
}

func TestFadeSuspendsCycling(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		toggles int
	}{
		{name: "enabled cycling is restored", enabled: true, toggles: 2},
		{name: "disabled cycling stays off", enabled: false, toggles: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyc := &fakeCycler{}
			dev := &recordingDevice{cycling: cyc.Enabled}
			e := NewEngine(dev, nil, WithClock(steppingClock(700*time.Millisecond)))
			e.AttachCycler(cyc)
			e.Init(&Black)
			cyc.enabled = tt.enabled

			e.FadeTo(&White)

			if dev.cycled != 0 {
				t.Errorf("cycling was active during %d fade steps", dev.cycled)
			}
			if cyc.enabled != tt.enabled {
				t.Errorf("cycling enabled = %v after fade, want %v", cyc.enabled, tt.enabled)
			}
			if cyc.toggles != tt.toggles {
				t.Errorf("cycler toggled %d times, want %d", cyc.toggles, tt.toggles)
			}
		})
	}
}

func TestFadeSoundHook(t *testing.T) {
	tests := []struct {
		name   string
		music  bool
		speech bool
		want   bool
	}{
		{name: "music", music: true, want: true},
		{name: "speech", speech: true, want: true},
		{name: "silent", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snd := &fakeSound{music: tt.music, speech: tt.speech}
			e := NewEngine(&recordingDevice{}, snd, WithClock(steppingClock(700*time.Millisecond)))
			e.Init(&Black)
			snd.updates = 0

			e.FadeTo(&White)

			want := 0
			if tt.want {
				want = e.Steps()
			}
			if snd.updates != want {
				t.Errorf("sound updated %d times, want %d", snd.updates, want)
			}

			// The hook belongs to one fade only.
			snd.updates = 0
			e.SetTo(&Black)
			if snd.updates != 0 {
				t.Error("sound hook still installed after fade")
			}
		})
	}
}

func TestSetTo(t *testing.T) {
	dev := &recordingDevice{}
	e := NewEngine(dev, nil)
	e.SetTo(&White)
	if dev.shown != White || e.Current() != White {
		t.Error("SetTo should update device and current palette")
	}
	if len(dev.frames) != 1 {
		t.Errorf("SetTo pushed %d frames, want 1", len(dev.frames))
	}
}

func TestSetEntries(t *testing.T) {
	dev := &recordingDevice{}
	e := NewEngine(dev, nil)
	e.SetTo(&Black)

	entries := []RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}}
	e.SetEntries(entries, 10, 12)

	cur := e.Current()
	for i := 0; i < Size; i++ {
		want := RGB{}
		if i >= 10 && i <= 12 {
			want = entries[i-10]
		}
		if cur[i] != want {
			t.Errorf("current[%d] = %v, want %v", i, cur[i], want)
		}
		if dev.shown[i] != want {
			t.Errorf("device[%d] = %v, want %v", i, dev.shown[i], want)
		}
	}
}

func TestSetEntriesOutOfRangePanics(t *testing.T) {
	e := NewEngine(&recordingDevice{}, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for range past the palette end")
		}
	}()
	e.SetEntries(make([]RGB, 4), 254, 257)
}
