package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	System      SystemConfig      `toml:"system"`
	Preferences PreferencesConfig `toml:"preferences"`
	Sound       SoundConfig       `toml:"sound"`
	Subtitles   SubtitleConfig    `toml:"subtitles"`
	Video       VideoConfig       `toml:"video"`
	UI          UIConfig          `toml:"ui"`
	Debug       DebugConfig       `toml:"debug"`
}

type SystemConfig struct {
	Language     string `toml:"language"`
	DataDir      string `toml:"data_dir"`
	ColorCycling bool   `toml:"color_cycling"`
}

type PreferencesConfig struct {
	Subtitles bool `toml:"subtitles"`
}

// SoundConfig volumes use the 0-32767 mixer scale.
type SoundConfig struct {
	Music       bool   `toml:"music"`
	Speech      bool   `toml:"speech"`
	MusicVolume int    `toml:"music_volume"`
	MusicPath   string `toml:"music_path"`
}

type SubtitleConfig struct {
	Font        string  `toml:"font"`
	FontSize    int     `toml:"font_size"`
	BorderColor string  `toml:"border_color"`
	BorderSize  float64 `toml:"border_size"`
	Position    int     `toml:"position"`
	// FrameRate converts subtitle frame numbers to time when the movie
	// does not report its own.
	FrameRate float64 `toml:"frame_rate"`
}

type VideoConfig struct {
	HWAccel string `toml:"hwdec"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type DebugConfig struct {
	Enabled bool `toml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		System: SystemConfig{
			Language:     "english",
			DataDir:      ".",
			ColorCycling: true,
		},
		Sound: SoundConfig{
			Music:       true,
			Speech:      true,
			MusicVolume: 22281,
			MusicPath:   `sound\music\`,
		},
		Subtitles: SubtitleConfig{
			Font:        "Liberation Sans",
			FontSize:    36,
			BorderColor: "#000000",
			BorderSize:  2,
			Position:    95,
			FrameRate:   15,
		},
		Video: VideoConfig{
			HWAccel: "auto-safe",
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      640,
			Height:     480,
		},
	}
}

// Language is the subtitle language directory name.
func (c *Config) Language() string {
	return c.System.Language
}

// SubtitlesEnabled reports the player's subtitle preference.
func (c *Config) SubtitlesEnabled() bool {
	return c.Preferences.Subtitles
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "cutscene"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath is where the played-movie history is kept.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "movies.dat"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
