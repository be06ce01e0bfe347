package palette

import "fmt"

// Size is the number of entries in a palette.
const Size = 256

// MaxIntensity is the largest channel value of a 6-bit VGA palette entry.
const MaxIntensity = 63

// ByteLen is the length of a palette in its packed r,g,b byte layout.
const ByteLen = Size * 3

// RGB is a single palette entry with channels in the 0-63 range.
type RGB struct {
	R, G, B uint8
}

// Palette is a full 256-entry color table.
type Palette [Size]RGB

var (
	// Black has every entry set to zero.
	Black Palette

	// White has every channel of every entry at MaxIntensity.
	White = uniform(MaxIntensity)
)

func uniform(v uint8) Palette {
	var p Palette
	for i := range p {
		p[i] = RGB{R: v, G: v, B: v}
	}
	return p
}

// FromBytes decodes the packed r,g,b layout used by .pal files and the
// save format. b must hold at least ByteLen bytes.
func FromBytes(b []byte) (Palette, error) {
	var p Palette
	if len(b) < ByteLen {
		return p, fmt.Errorf("palette: need %d bytes, got %d", ByteLen, len(b))
	}
	for i := range p {
		p[i] = RGB{R: b[i*3], G: b[i*3+1], B: b[i*3+2]}
	}
	return p, nil
}

// Bytes encodes p in the packed r,g,b layout.
func (p *Palette) Bytes() []byte {
	out := make([]byte, ByteLen)
	for i, c := range p {
		out[i*3] = c.R
		out[i*3+1] = c.G
		out[i*3+2] = c.B
	}
	return out
}

// RGBA8 expands a 6-bit entry to 8-bit channels the way the display
// driver does.
func (c RGB) RGBA8() (r, g, b uint8) {
	return c.R << 2, c.G << 2, c.B << 2
}
