// Package movie plays the pre-rendered cut scenes: it resolves the movie
// asset, prepares the display and audio, runs the player until the movie
// ends or the user skips it, and restores everything afterwards. It also
// keeps the persisted record of which movies have been shown.
package movie

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a movie in the catalogue.
type ID int

const (
	MovieIPLogo ID = iota
	MovieMPLogo
	MovieIntro
	MovieVaultExplode
	MovieCathedralExplode
	MovieOverseerIntro
	MovieBoil3
	MovieOverseerRun
	MovieWalkMale
	MovieWalkFemale
	MovieDipped
	MovieBoil1
	MovieBoil2
	MovieRaeKills

	// MovieCount is the number of movies in the catalogue and the length of
	// the persisted played list.
	MovieCount = int(iota)
)

var files = [MovieCount]string{
	"iplogo.mve",
	"mplogo.mve",
	"intro.mve",
	"vexpld.mve",
	"cathexp.mve",
	"ovrintro.mve",
	"boil3.mve",
	"ovrrun.mve",
	"walkm.mve",
	"walkw.mve",
	"dipedv.mve",
	"boil1.mve",
	"boil2.mve",
	"raekills.mve",
}

const (
	// movieDir holds the movie assets, as a game path.
	movieDir = `art\cuts\`

	// SubtitlePalettePath is the color table used while subtitles are shown.
	SubtitlePalettePath = `art\cuts\subtitle.pal`

	// LivePalettePath is the game's regular color table.
	LivePalettePath = `color.pal`
)

// Valid reports whether id is in the catalogue.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < MovieCount
}

// File returns the asset file name of the movie.
func (id ID) File() string {
	if !id.Valid() {
		return ""
	}
	return files[id]
}

// AssetPath returns the game path of the movie asset.
func (id ID) AssetPath() string {
	return movieDir + id.File()
}

func (id ID) String() string {
	if !id.Valid() {
		return "movie(" + strconv.Itoa(int(id)) + ")"
	}
	return strings.TrimSuffix(files[id], ".mve")
}

// ForcesSubtitles reports whether the movie always shows subtitles,
// regardless of the player's preference.
func ForcesSubtitles(id ID) bool {
	switch id {
	case MovieBoil3, MovieBoil1, MovieBoil2:
		return true
	}
	return false
}

// Lookup resolves a movie by catalogue index, name ("boil3") or file
// name ("boil3.mve").
func Lookup(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		id := ID(n)
		if !id.Valid() {
			return 0, fmt.Errorf("movie %d: %w", n, ErrUnknownMovie)
		}
		return id, nil
	}
	name := strings.ToLower(s)
	if !strings.HasSuffix(name, ".mve") {
		name += ".mve"
	}
	for i, f := range files {
		if f == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("movie %q: %w", s, ErrUnknownMovie)
}

// Flags select the transitions around a movie.
type Flags int

const (
	FlagFadeIn     Flags = 0x1
	FlagFadeOut    Flags = 0x2
	FlagStopMusic  Flags = 0x4
	FlagPauseMusic Flags = 0x8
)

func (f Flags) String() string {
	var parts []string
	if f&FlagFadeIn != 0 {
		parts = append(parts, "fade-in")
	}
	if f&FlagFadeOut != 0 {
		parts = append(parts, "fade-out")
	}
	if f&FlagStopMusic != 0 {
		parts = append(parts, "stop-music")
	}
	if f&FlagPauseMusic != 0 {
		parts = append(parts, "pause-music")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Player flags sent before a movie starts.
const (
	PlayerFlagBase      = 0x4
	PlayerFlagSubtitles = 0x8
)
