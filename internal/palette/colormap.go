package palette

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ErrShortColorTable is returned when a color table file holds fewer than
// ByteLen bytes.
var ErrShortColorTable = errors.New("color table too short")

// Opener opens game data files by their game-relative path.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// ColorMap holds the live color table: the palette the game renders with
// outside of fades and movies.
type ColorMap struct {
	files  Opener
	logger *zap.Logger
	live   Palette
	path   string
}

// NewColorMap creates a color map reading tables through files.
func NewColorMap(files Opener, logger *zap.Logger) *ColorMap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ColorMap{files: files, logger: logger}
}

// LoadColorTable replaces the live palette with the table stored at path.
// Only the leading 768 palette bytes are read; the blend tables that follow
// in the file are rebuilt elsewhere. On error the live palette is unchanged.
func (m *ColorMap) LoadColorTable(path string) error {
	f, err := m.files.Open(path)
	if err != nil {
		return fmt.Errorf("open color table %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, ByteLen)
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("read color table %s: %w", path, ErrShortColorTable)
		}
		return fmt.Errorf("read color table %s: %w", path, err)
	}

	p, err := FromBytes(buf)
	if err != nil {
		return err
	}
	for i, c := range p {
		p[i] = RGB{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
	}

	m.live = p
	m.path = path
	m.logger.Debug("color table loaded", zap.String("path", path))
	return nil
}

// Live returns the most recently loaded color table.
func (m *ColorMap) Live() Palette {
	return m.live
}

// Path returns the path of the most recently loaded color table.
func (m *ColorMap) Path() string {
	return m.path
}

func clamp(v uint8) uint8 {
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
