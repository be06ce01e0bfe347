package player

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gen2brain/go-mpv"
	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/subtitle"
)

// applySubtitleStyle sets the subtitle look from config.
func (p *Player) applySubtitleStyle() {
	cfg := p.subs
	p.must(p.m.SetOptionString("sub-font", cfg.Font))
	p.must(p.m.SetOptionString("sub-font-size", strconv.Itoa(cfg.FontSize)))
	p.must(p.m.SetOptionString("sub-color", "#FFFFFF"))
	p.must(p.m.SetOptionString("sub-border-color", cfg.BorderColor))
	p.must(p.m.SetOptionString("sub-border-size", fmt.Sprintf("%.1f", cfg.BorderSize)))
	p.must(p.m.SetOptionString("sub-pos", strconv.Itoa(cfg.Position)))
}

// loadCues reads the subtitle file for the next movie. A missing or
// unreadable file plays the movie without subtitles.
func (p *Player) loadCues(gamePath string) []subtitle.Cue {
	path, err := p.files.Resolve(gamePath)
	if err != nil {
		p.logger.Warn("subtitle file", zap.String("path", gamePath), zap.Error(err))
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		p.logger.Warn("subtitle file", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer f.Close()

	cues, err := subtitle.Parse(f)
	if err != nil {
		p.logger.Warn("subtitle file", zap.String("path", path), zap.Error(err))
		return nil
	}
	return cues
}

// attachSubtitles converts the pending cues at the loaded movie's frame
// rate and adds them as the selected subtitle track.
func (p *Player) attachSubtitles() {
	fps := p.subs.FrameRate
	if v, err := p.m.GetProperty("container-fps", mpv.FormatDouble); err == nil {
		if f, ok := v.(float64); ok && f > 0 {
			fps = f
		}
	}

	f, err := os.CreateTemp("", "cutscene-*.srt")
	if err != nil {
		p.logger.Warn("subtitle track", zap.Error(err))
		return
	}
	err = subtitle.WriteSRT(f, p.cues, fps)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		p.logger.Warn("subtitle track", zap.Error(err))
		return
	}

	p.removeSubtitleFile()
	p.subtitleFile = f.Name()
	if err := p.m.Command([]string{"sub-add", f.Name(), "select"}); err != nil {
		p.logger.Warn("subtitle track", zap.Error(err))
		return
	}
	p.logger.Debug("subtitles attached", zap.Int("cues", len(p.cues)), zap.Float64("fps", fps))
}

func (p *Player) removeSubtitleFile() {
	if p.subtitleFile == "" {
		return
	}
	os.Remove(p.subtitleFile)
	p.subtitleFile = ""
}
