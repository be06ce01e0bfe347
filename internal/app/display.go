package app

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/cutscene/internal/movie"
	"github.com/depeter/cutscene/internal/palette"
)

var blackColor = color.RGBA{A: 0xFF}

// display is an indexed-color framebuffer shown through the palette.
type display struct {
	mu      sync.Mutex
	pal     palette.Palette
	indices []byte
	w, h    int
	dirty   bool

	pixels []byte
	img    *ebiten.Image

	font      int
	textColor uint16
}

func (d *display) init(w, h int) {
	d.w, d.h = w, h
	d.indices = backdrop(w, h)
	d.pixels = make([]byte, w*h*4)
	d.textColor = movie.PackTextColor(1, 1, 1)
	d.dirty = true
}

// backdrop is a 16x16 swatch grid of every palette index, so fades and
// color cycling are visible without game art.
func backdrop(w, h int) []byte {
	idx := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := y * 16 / h
		for x := 0; x < w; x++ {
			idx[y*w+x] = byte(row*16 + x*16/w)
		}
	}
	return idx
}

func (d *display) draw(screen *ebiten.Image) {
	d.mu.Lock()
	if d.dirty {
		for i, c := range d.indices {
			r, g, b := d.pal[c].RGBA8()
			p := d.pixels[i*4 : i*4+4]
			p[0], p[1], p[2], p[3] = r, g, b, 0xFF
		}
		d.dirty = false
		if d.img == nil {
			d.img = ebiten.NewImage(d.w, d.h)
		}
		d.img.WritePixels(d.pixels)
	}
	d.mu.Unlock()

	if d.img != nil {
		screen.DrawImage(d.img, nil)
	}
}

func (d *display) invalidate() {
	d.mu.Lock()
	d.dirty = true
	d.mu.Unlock()
}

// SetPalette shows p from the next frame on and waits for that frame, so
// a fade advances one step per displayed frame.
func (f *Frontend) SetPalette(p *palette.Palette) {
	d := &f.display
	d.mu.Lock()
	d.pal = *p
	d.dirty = true
	d.mu.Unlock()
	f.frames.wait()
}

// SetEntries replaces palette entries from start on without waiting.
func (f *Frontend) SetEntries(entries []palette.RGB, start int) {
	d := &f.display
	d.mu.Lock()
	copy(d.pal[start:], entries)
	d.dirty = true
	d.mu.Unlock()
}

// TextColor returns the window text color packed as RGB555.
func (f *Frontend) TextColor() uint16 {
	d := &f.display
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.textColor
}

func (f *Frontend) SetTextColor(r, g, b float64) {
	d := &f.display
	d.mu.Lock()
	defer d.mu.Unlock()
	d.textColor = movie.PackTextColor(r, g, b)
}

func (f *Frontend) Font() int {
	d := &f.display
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.font
}

func (f *Frontend) SetFont(id int) {
	d := &f.display
	d.mu.Lock()
	defer d.mu.Unlock()
	d.font = id
}
