package escpos

import (
	"fmt"
	"image"
	_ "image/png" // logo assets are PNG files
	"os"
)

// bitmap is a row-packed 1-bit image, most significant bit first, each row
// padded to a whole byte. This is the payload layout GS v 0 expects.
type bitmap struct {
	width  int
	height int
	data   []byte
}

// lumThreshold splits pixels into ink and paper on 16-bit luminance.
const lumThreshold = 0x8000

func rasterizeFile(path string) (bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return bitmap{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return bitmap{}, fmt.Errorf("decode image %s: %w", path, err)
	}
	return rasterize(img), nil
}

// rasterize thresholds img to one bit per pixel. Dark opaque pixels become
// ink; transparent pixels print as paper.
func rasterize(img image.Image) bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	stride := (w + 7) / 8

	bits := bitmap{width: w, height: h, data: make([]byte, stride*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a < 0x8000 {
				continue
			}
			lum := (299*r + 587*g + 114*b) / 1000
			if lum < lumThreshold {
				bits.data[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return bits
}
