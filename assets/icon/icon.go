package icon

import (
	"image"
	"image/color"
	"math"
)

// Colors from the game's default palette
var (
	background = color.RGBA{R: 0x14, G: 0x10, B: 0x0C, A: 0xFF}
	reelMetal  = color.RGBA{R: 0x9C, G: 0x94, B: 0x7C, A: 0xFF}
	reelShadow = color.RGBA{R: 0x58, G: 0x50, B: 0x40, A: 0xFF}
	filmBrown  = color.RGBA{R: 0x3C, G: 0x2C, B: 0x1C, A: 0xFF}
	pipBoy     = color.RGBA{R: 0x18, G: 0xC8, B: 0x30, A: 0xFF}
	glow       = color.RGBA{R: 0x18, G: 0xC8, B: 0x30, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, background)

	// Film strip trailing off the reel
	drawStrip(img, s)

	// Reel on top of the strip
	drawReel(img, s)

	return img
}

func drawStrip(img *image.RGBA, s float64) {
	y := int(s * 0.72)
	h := int(s * 0.2)
	fillRect(img, int(s*0.4), y, int(s*0.6), h, filmBrown)

	// Sprocket holes along both edges
	hole := max(int(s/16), 1)
	for x := int(s * 0.45); x < int(s); x += hole * 2 {
		fillRect(img, x, y+hole/2, hole, hole, background)
		fillRect(img, x, y+h-hole-hole/2, hole, hole, background)
	}
}

func drawReel(img *image.RGBA, s float64) {
	cx, cy := s*0.42, s*0.42
	r := s * 0.38

	fillCircle(img, cx, cy, r+s*0.04, glow)
	fillCircle(img, cx, cy, r, reelMetal)
	fillCircle(img, cx, cy, r*0.92, reelShadow)
	fillCircle(img, cx, cy, r*0.86, reelMetal)

	// Five windows around the hub
	for i := 0; i < 5; i++ {
		a := float64(i)*2*math.Pi/5 - math.Pi/2
		fillCircle(img, cx+math.Cos(a)*r*0.52, cy+math.Sin(a)*r*0.52, r*0.22, background)
	}

	fillCircle(img, cx, cy, r*0.16, pipBoy)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := int(cy - r); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - r); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	mix := func(src uint32, d uint8) uint8 {
		return uint8((src*a0/0xFFFF + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{R: mix(r0, dst.R), G: mix(g0, dst.G), B: mix(b0, dst.B), A: 0xFF})
}
