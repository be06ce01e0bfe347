// Package subtitle reads the game's movie subtitle files and converts them
// to SubRip for the video player.
//
// A subtitle file holds one cue per line as "<frame>:<text>". Each cue is
// shown from the end of the previous cue until its own frame.
package subtitle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoCues is returned for a subtitle file without a single valid line.
var ErrNoCues = errors.New("no subtitle cues")

// Cue is one subtitle line, shown for frames [Start, End).
type Cue struct {
	Start int
	End   int
	Text  string
}

// Parse reads cues from r. Malformed lines and cues that do not advance
// past the previous one are skipped.
func Parse(r io.Reader) ([]Cue, error) {
	var cues []Cue
	prev := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		frameStr, text, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameStr))
		if err != nil || frame <= prev {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			cues = append(cues, Cue{Start: prev, End: frame, Text: text})
		}
		prev = frame
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read subtitles: %w", err)
	}
	if len(cues) == 0 {
		return nil, ErrNoCues
	}
	return cues, nil
}

// WriteSRT writes cues as SubRip, converting frames to time at fps.
func WriteSRT(w io.Writer, cues []Cue, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("write subtitles: invalid frame rate %v", fps)
	}
	bw := bufio.NewWriter(w)
	for i, c := range cues {
		fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n", i+1, timestamp(c.Start, fps), timestamp(c.End, fps), c.Text)
	}
	return bw.Flush()
}

func timestamp(frame int, fps float64) string {
	ms := int64(math.Round(float64(frame) * 1000 / fps))
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3_600_000, ms/60_000%60, ms/1000%60, ms%1000)
}
