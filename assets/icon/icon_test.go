package icon

import (
	"image"
	"testing"
)

func TestGenerate(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("got %d images", len(imgs))
	}
	for i, want := range []int{64, 32} {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("image %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
		rgba := imgs[i].(*image.RGBA)
		for j := 3; j < len(rgba.Pix); j += 4 {
			if rgba.Pix[j] != 0xFF {
				t.Fatalf("image %d has a translucent pixel", i)
			}
		}
	}
}
