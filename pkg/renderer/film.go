package renderer

import (
	"image"
	"image/color"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// Film is the float-valued framebuffer the renderer writes into. Workers own
// disjoint pixel ranges, so concurrent SetPixel calls on distinct pixels need
// no synchronization.
type Film struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFilm creates a film with all pixels black
func NewFilm(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the film width in pixels
func (f *Film) Width() int { return f.width }

// Height returns the film height in pixels
func (f *Film) Height() int { return f.height }

// SetPixel writes the color at (x, y)
func (f *Film) SetPixel(x, y int, c core.Vec3) {
	f.pixels[y*f.width+x] = c
}

// At returns the color at (x, y)
func (f *Film) At(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}

// ToRGBA converts the film to an 8-bit image with gamma correction and
// clamping. A gamma of 1 disables correction.
func (f *Film) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			if gamma != 1 {
				c = c.GammaCorrect(gamma)
			}
			c = c.Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
