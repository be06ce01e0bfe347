package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language() != "english" || cfg.SubtitlesEnabled() {
		t.Errorf("settings = %q/%v", cfg.Language(), cfg.SubtitlesEnabled())
	}
	if !cfg.System.ColorCycling || !cfg.Sound.Music || !cfg.Sound.Speech {
		t.Errorf("defaults = %+v %+v", cfg.System, cfg.Sound)
	}
	if cfg.Sound.MusicVolume != 22281 {
		t.Errorf("music volume = %d", cfg.Sound.MusicVolume)
	}
}

func TestLoadPartialFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "cutscene")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "[system]\nlanguage = \"german\"\n\n[preferences]\nsubtitles = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language() != "german" || !cfg.SubtitlesEnabled() {
		t.Errorf("settings = %q/%v", cfg.Language(), cfg.SubtitlesEnabled())
	}
	if cfg.System.DataDir != "." || cfg.UI.Width != 640 {
		t.Errorf("unset keys lost their defaults: %+v %+v", cfg.System, cfg.UI)
	}
}

func TestLoadInvalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "cutscene")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[system\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Sound.Music = false
	cfg.Preferences.Subtitles = true
	cfg.Debug.Enabled = true
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Sound.Music || !got.Preferences.Subtitles || !got.Debug.Enabled {
		t.Errorf("round trip = %+v", got)
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	path, err := HistoryPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "cutscene", "movies.dat"); path != want {
		t.Errorf("HistoryPath = %q, want %q", path, want)
	}
}
