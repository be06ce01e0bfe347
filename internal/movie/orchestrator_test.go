package movie_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/movie"
	"github.com/depeter/cutscene/internal/movie/mocks"
	"github.com/depeter/cutscene/internal/palette"
)

type fakeInput struct {
	hidden bool
	shape  movie.CursorShape
	shows  int
	hides  int

	held    []movie.Buttons // ButtonsDown results, consumed per call
	pointer []movie.Buttons // RawPointer results, consumed per call
	quit    bool
	keys    int
}

func (in *fakeInput) PollKey() (int, bool) {
	if in.keys == 0 {
		return 0, false
	}
	in.keys--
	return ' ', true
}

func (in *fakeInput) RawPointer() (int, int, movie.Buttons) {
	if len(in.pointer) == 0 {
		return 0, 0, 0
	}
	b := in.pointer[0]
	in.pointer = in.pointer[1:]
	return 320, 240, b
}

func (in *fakeInput) ButtonsDown() movie.Buttons {
	if len(in.held) == 0 {
		return 0
	}
	b := in.held[0]
	in.held = in.held[1:]
	return b
}

func (in *fakeInput) PollGesture() (movie.Gesture, bool) { return movie.Gesture{}, false }
func (in *fakeInput) QuitRequested() bool                { return in.quit }
func (in *fakeInput) CursorHidden() bool                 { return in.hidden }
func (in *fakeInput) ShowCursor()                        { in.hidden = false; in.shows++ }
func (in *fakeInput) HideCursor()                        { in.hidden = true; in.hides++ }
func (in *fakeInput) SetCursorShape(s movie.CursorShape) { in.shape = s }

type fakePump struct{ n int }

func (p *fakePump) Pump() { p.n++ }

type fakeSettings struct {
	language  string
	subtitles bool
}

func (s fakeSettings) Language() string       { return s.language }
func (s fakeSettings) SubtitlesEnabled() bool { return s.subtitles }

type fakeText struct {
	color uint16
	font  int
	sets  int
}

func (t *fakeText) TextColor() uint16 { return t.color }
func (t *fakeText) Font() int         { return t.font }
func (t *fakeText) SetFont(id int)    { t.font = id; t.sets++ }
func (t *fakeText) SetTextColor(r, g, b float64) {
	t.color = movie.PackTextColor(r, g, b)
	t.sets++
}

type fakeColors struct {
	live  palette.Palette
	loads []string
}

func (c *fakeColors) LoadColorTable(path string) error {
	c.loads = append(c.loads, path)
	return nil
}

func (c *fakeColors) Live() palette.Palette { return c.live }

// fakeFader names the palettes it is asked to show.
type fakeFader struct {
	current palette.Palette
	live    palette.Palette
	calls   []string
}

func (f *fakeFader) name(p *palette.Palette) string {
	switch *p {
	case palette.Black:
		return "black"
	case f.live:
		return "live"
	}
	return "other"
}

func (f *fakeFader) Current() palette.Palette { return f.current }

func (f *fakeFader) FadeTo(p *palette.Palette) {
	f.calls = append(f.calls, "fade:"+f.name(p))
	f.current = *p
}

func (f *fakeFader) SetTo(p *palette.Palette) {
	f.calls = append(f.calls, "set:"+f.name(p))
	f.current = *p
}

type fakeCycler struct{ enabled bool }

func (c *fakeCycler) Enabled() bool { return c.enabled }
func (c *fakeCycler) Enable()       { c.enabled = true }
func (c *fakeCycler) Disable()      { c.enabled = false }

type fixture struct {
	player   *mocks.MockPlayer
	mixer    *mocks.MockMixer
	surfaces *mocks.MockSurfaces
	assets   *mocks.MockAssetProbe

	input    *fakeInput
	pump     *fakePump
	text     *fakeText
	colors   *fakeColors
	fader    *fakeFader
	cycler   *fakeCycler
	settings fakeSettings
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	live := palette.White
	return &fixture{
		player:   mocks.NewMockPlayer(ctrl),
		mixer:    mocks.NewMockMixer(ctrl),
		surfaces: mocks.NewMockSurfaces(ctrl),
		assets:   mocks.NewMockAssetProbe(ctrl),
		input:    &fakeInput{},
		pump:     &fakePump{},
		text:     &fakeText{color: 0x1234, font: 3},
		colors:   &fakeColors{live: live},
		fader:    &fakeFader{current: live, live: live},
		cycler:   &fakeCycler{enabled: true},
		settings: fakeSettings{language: "english"},
	}
}

func (f *fixture) orchestrator() *movie.Orchestrator {
	return movie.NewOrchestrator(movie.Deps{
		Player:   f.player,
		Mixer:    f.mixer,
		Surfaces: f.surfaces,
		Input:    f.input,
		Pump:     f.pump,
		Assets:   f.assets,
		Settings: f.settings,
		Text:     f.text,
		Colors:   f.colors,
		Fader:    f.fader,
		Cycler:   f.cycler,
		Logger:   zap.NewNop(),
	})
}

const testWindow movie.WindowHandle = 7

// expectPlayback sets up a movie that is found, shown on a 800x600 screen
// and reports playing for frames polls.
func (f *fixture) expectPlayback(id movie.ID, playerFlags, frames int) {
	path := id.AssetPath()
	f.assets.EXPECT().Exists(path).Return(true)
	f.surfaces.EXPECT().ScreenSize().Return(800, 600)
	f.surfaces.EXPECT().CreateModal(movie.Rect{X: 80, Y: 60, W: 640, H: 480}).Return(testWindow, nil)
	f.surfaces.EXPECT().Draw(testWindow)
	f.player.EXPECT().SetFlags(playerFlags)
	f.player.EXPECT().Start(testWindow, path).Return(nil)

	remaining := frames
	f.player.EXPECT().IsPlaying().DoAndReturn(func() bool {
		remaining--
		return remaining >= 0
	}).AnyTimes()
	f.player.EXPECT().PollOnce().AnyTimes()
	f.player.EXPECT().Stop().Return(nil)
	f.surfaces.EXPECT().Destroy(testWindow).Return(nil)
	f.surfaces.EXPECT().RedrawAll()
}

func TestPlayMissingMovie(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().Exists(`art\cuts\intro.mve`).Return(false)
	o := f.orchestrator()

	err := o.Play(movie.MovieIntro, movie.FlagFadeIn|movie.FlagStopMusic)
	if !errors.Is(err, movie.ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
	if o.State() != movie.StateIdle {
		t.Errorf("state = %s", o.State())
	}
	if o.HasPlayed(movie.MovieIntro) {
		t.Error("missing movie marked played")
	}
	if len(f.fader.calls) != 0 || !f.cycler.enabled || f.input.shows+f.input.hides != 0 {
		t.Errorf("shared state touched: fader %v cycling %v cursor %d/%d",
			f.fader.calls, f.cycler.enabled, f.input.shows, f.input.hides)
	}
}

func TestPlayUnknownMovie(t *testing.T) {
	f := newFixture(t)
	err := f.orchestrator().Play(movie.ID(movie.MovieCount), 0)
	if !errors.Is(err, movie.ErrUnknownMovie) {
		t.Fatalf("err = %v, want ErrUnknownMovie", err)
	}
}

func TestPlaySurfaceFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("out of windows")
	f.assets.EXPECT().Exists(gomock.Any()).Return(true)
	f.surfaces.EXPECT().ScreenSize().Return(640, 480)
	f.surfaces.EXPECT().CreateModal(movie.Rect{W: 640, H: 480}).Return(movie.WindowHandle(0), boom)
	o := f.orchestrator()

	err := o.Play(movie.MovieVaultExplode, movie.FlagFadeIn|movie.FlagPauseMusic)
	if !errors.Is(err, movie.ErrSurface) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want ErrSurface wrapping cause", err)
	}
	want := []string{"fade:black", "set:live"}
	if len(f.fader.calls) != 2 || f.fader.calls[0] != want[0] || f.fader.calls[1] != want[1] {
		t.Errorf("fader calls = %v, want %v", f.fader.calls, want)
	}
	if !f.cycler.enabled || f.input.hides != 0 || o.HasPlayed(movie.MovieVaultExplode) {
		t.Error("shared state changed by failed prepare")
	}
	if o.State() != movie.StateIdle {
		t.Errorf("state = %s", o.State())
	}
}

func TestPlayForcedSubtitlesWithoutFile(t *testing.T) {
	f := newFixture(t)
	f.expectPlayback(movie.MovieBoil3, movie.PlayerFlagBase, 0)
	f.assets.EXPECT().Exists(`text\english\cuts\boil3.sve`).Return(false)
	o := f.orchestrator()

	if err := o.Play(movie.MovieBoil3, 0); err != nil {
		t.Fatal(err)
	}
	if !o.HasPlayed(movie.MovieBoil3) {
		t.Error("boil3 not marked played")
	}
	if f.text.sets != 0 || len(f.colors.loads) != 0 {
		t.Errorf("text style touched without subtitles: sets %d loads %v", f.text.sets, f.colors.loads)
	}
	if got := f.fader.calls; len(got) != 1 || got[0] != "set:black" {
		t.Errorf("fader calls = %v", got)
	}
}

func TestPlayPreferredSubtitles(t *testing.T) {
	f := newFixture(t)
	f.settings.subtitles = true
	f.settings.language = "german"
	f.expectPlayback(movie.MovieIntro, movie.PlayerFlagBase|movie.PlayerFlagSubtitles, 2)
	f.assets.EXPECT().Exists(`text\german\cuts\intro.sve`).Return(true)
	o := f.orchestrator()

	if err := o.Play(movie.MovieIntro, movie.FlagFadeOut); err != nil {
		t.Fatal(err)
	}

	// subtitle table, live table after the movie, nothing extra for the fade out
	want := []string{movie.SubtitlePalettePath, movie.LivePalettePath}
	if len(f.colors.loads) != len(want) || f.colors.loads[0] != want[0] || f.colors.loads[1] != want[1] {
		t.Errorf("color tables loaded = %v, want %v", f.colors.loads, want)
	}
	if f.text.color != 0x1234 || f.text.font != 3 {
		t.Errorf("text style = %#x/%d, want restored 0x1234/3", f.text.color, f.text.font)
	}
	if got := f.fader.calls; len(got) != 2 || got[1] != "fade:live" {
		t.Errorf("fader calls = %v", got)
	}
}

func TestPlayForcedSubtitlesIgnorePreference(t *testing.T) {
	f := newFixture(t)
	f.expectPlayback(movie.MovieBoil2, movie.PlayerFlagBase|movie.PlayerFlagSubtitles, 0)
	f.assets.EXPECT().Exists(`text\english\cuts\boil2.sve`).Return(true)

	if err := f.orchestrator().Play(movie.MovieBoil2, 0); err != nil {
		t.Fatal(err)
	}
	if len(f.colors.loads) != 2 {
		t.Errorf("color tables loaded = %v", f.colors.loads)
	}
}

func TestPlaySkipRequiresRelease(t *testing.T) {
	f := newFixture(t)
	f.expectPlayback(movie.MovieOverseerRun, movie.PlayerFlagBase, 1000)
	f.input.held = []movie.Buttons{movie.ButtonLeft, movie.ButtonLeft}
	f.input.pointer = []movie.Buttons{0, movie.ButtonRight, movie.ButtonRight, 0, movie.ButtonLeft}
	o := f.orchestrator()

	if err := o.Play(movie.MovieOverseerRun, 0); err != nil {
		t.Fatal(err)
	}
	if len(f.input.pointer) != 1 {
		t.Errorf("skip consumed %d pointer samples, want 4", 5-len(f.input.pointer))
	}
	// two drain pumps, four playback polls
	if f.pump.n != 6 {
		t.Errorf("pumps = %d, want 6", f.pump.n)
	}
	if !o.HasPlayed(movie.MovieOverseerRun) {
		t.Error("skipped movie not marked played")
	}
}

func TestPlayQuitAndKey(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeInput)
	}{
		{"quit", func(in *fakeInput) { in.quit = true }},
		{"key", func(in *fakeInput) { in.keys = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectPlayback(movie.MovieDipped, movie.PlayerFlagBase, 1000)
			tt.setup(f.input)
			o := f.orchestrator()
			if err := o.Play(movie.MovieDipped, 0); err != nil {
				t.Fatal(err)
			}
			if f.pump.n != 1 {
				t.Errorf("pumps = %d, want 1", f.pump.n)
			}
		})
	}
}

func TestPlayMusicFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags movie.Flags
		setup func(*mocks.MockMixer)
	}{
		{"stop", movie.FlagStopMusic, func(m *mocks.MockMixer) {
			m.EXPECT().StopBackground()
		}},
		{"pause", movie.FlagPauseMusic, func(m *mocks.MockMixer) {
			gomock.InOrder(
				m.EXPECT().PauseBackground(),
				m.EXPECT().UnpauseBackground(),
			)
		}},
		{"stop wins over pause", movie.FlagStopMusic | movie.FlagPauseMusic, func(m *mocks.MockMixer) {
			gomock.InOrder(
				m.EXPECT().StopBackground(),
				m.EXPECT().UnpauseBackground(),
			)
		}},
		{"none", 0, func(*mocks.MockMixer) {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectPlayback(movie.MovieCathedralExplode, movie.PlayerFlagBase, 0)
			tt.setup(f.mixer)
			if err := f.orchestrator().Play(movie.MovieCathedralExplode, tt.flags); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestPlayFadeOutReloadsLiveTable(t *testing.T) {
	f := newFixture(t)
	f.expectPlayback(movie.MovieWalkMale, movie.PlayerFlagBase, 0)

	if err := f.orchestrator().Play(movie.MovieWalkMale, movie.FlagFadeIn|movie.FlagFadeOut); err != nil {
		t.Fatal(err)
	}
	if len(f.colors.loads) != 1 || f.colors.loads[0] != movie.LivePalettePath {
		t.Errorf("color tables loaded = %v", f.colors.loads)
	}
	want := []string{"fade:black", "set:black", "fade:live"}
	if len(f.fader.calls) != len(want) {
		t.Fatalf("fader calls = %v, want %v", f.fader.calls, want)
	}
	for i := range want {
		if f.fader.calls[i] != want[i] {
			t.Fatalf("fader calls = %v, want %v", f.fader.calls, want)
		}
	}
}

func TestPlayRestoresCursorAndCycling(t *testing.T) {
	tests := []struct {
		name          string
		hidden        bool
		cycling       bool
		wantHidden    bool
		wantShowCalls int
	}{
		{"visible cursor, cycling on", false, true, false, 1},
		{"hidden cursor, cycling off", true, false, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.input.hidden = tt.hidden
			f.cycler.enabled = tt.cycling
			f.expectPlayback(movie.MovieOverseerIntro, movie.PlayerFlagBase, 0)

			if err := f.orchestrator().Play(movie.MovieOverseerIntro, 0); err != nil {
				t.Fatal(err)
			}
			if f.input.hidden != tt.wantHidden {
				t.Errorf("cursor hidden = %v, want %v", f.input.hidden, tt.wantHidden)
			}
			if f.input.shows != tt.wantShowCalls {
				t.Errorf("ShowCursor calls = %d, want %d", f.input.shows, tt.wantShowCalls)
			}
			if f.input.shape != movie.CursorArrow {
				t.Errorf("cursor shape = %d", f.input.shape)
			}
			if f.cycler.enabled != tt.cycling {
				t.Errorf("cycling = %v, want %v", f.cycler.enabled, tt.cycling)
			}
		})
	}
}

func TestPlayStartFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("decoder")
	path := movie.MovieMPLogo.AssetPath()
	f.assets.EXPECT().Exists(path).Return(true)
	f.surfaces.EXPECT().ScreenSize().Return(640, 480)
	f.surfaces.EXPECT().CreateModal(gomock.Any()).Return(testWindow, nil)
	f.surfaces.EXPECT().Draw(testWindow)
	f.player.EXPECT().SetFlags(movie.PlayerFlagBase)
	f.player.EXPECT().Start(testWindow, path).Return(boom)
	f.player.EXPECT().Stop().Return(nil)
	f.player.EXPECT().PollOnce()
	f.surfaces.EXPECT().Destroy(testWindow).Return(nil)
	f.surfaces.EXPECT().RedrawAll()
	o := f.orchestrator()

	err := o.Play(movie.MovieMPLogo, 0)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if o.HasPlayed(movie.MovieMPLogo) {
		t.Error("movie that never started marked played")
	}
	if !f.cycler.enabled {
		t.Error("cycling not restored")
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name       string
		music      bool
		wantVolume int
	}{
		{"music on", true, 22281},
		{"music off", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mixer.EXPECT().IsBackgroundEnabled().Return(tt.music)
			f.mixer.EXPECT().BackgroundVolume().Return(22281).MaxTimes(1)
			f.player.EXPECT().SetVolume(tt.wantVolume)

			var source func(string) string
			f.player.EXPECT().SetSubtitleSource(gomock.Any()).Do(func(fn func(string) string) {
				source = fn
			})

			o := f.orchestrator()
			o.Registry().MarkPlayed(movie.MovieIntro)
			o.Init()

			if o.HasPlayed(movie.MovieIntro) {
				t.Error("Init kept playback history")
			}
			if got := source(movie.MovieIntro.AssetPath()); got != `text\english\cuts\intro.sve` {
				t.Errorf("subtitle source = %q", got)
			}
		})
	}
}
