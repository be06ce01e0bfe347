package movie

import "strings"

const (
	subtitleRoot = `text\`
	subtitleDir  = `\cuts\`
	subtitleExt  = ".sve"

	// subtitleFont is the font subtitles are rendered with.
	subtitleFont = 101
)

// SubtitlePath returns the localized subtitle file of a movie:
// text\<language>\cuts\<name>.sve. Only the movie's file name is kept.
func SubtitlePath(language, moviePath string) string {
	name := moviePath
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return subtitleRoot + language + subtitleDir + name + subtitleExt
}

// UnpackTextColor splits an RGB555 color into channels in 0..1.
func UnpackTextColor(c uint16) (r, g, b float64) {
	r = float64((c&0x7C00)>>10) / 31
	g = float64((c&0x3E0)>>5) / 31
	b = float64(c&0x1F) / 31
	return r, g, b
}

// PackTextColor is the inverse of UnpackTextColor. Channels are clamped to
// 0..1 and rounded to the nearest 5-bit step.
func PackTextColor(r, g, b float64) uint16 {
	return channel5(r)<<10 | channel5(g)<<5 | channel5(b)
}

func channel5(v float64) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 31
	}
	return uint16(v*31 + 0.5)
}
