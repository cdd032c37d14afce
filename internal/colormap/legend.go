package colormap

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Legend renders a horizontal ramp strip for a colormap: intensity 0 at
// the left edge, 1 at the right. Tick marks at 0, 1/4, 1/2, 3/4, and 1
// are drawn in whichever of black or white contrasts better with the
// local ramp color, judged by perceptual luminance.
func Legend(k Kind, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		v := 0.0
		if width > 1 {
			v = float64(x) / float64(width-1)
		}
		r, g, b := k.Map(v)
		for y := 0; y < height; y++ {
			i := out.PixOffset(x, y)
			out.Pix[i] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 255
		}
	}

	tickHeight := height / 3
	for tick := 0; tick <= 4; tick++ {
		x := (width - 1) * tick / 4
		r, g, b := k.Map(float64(tick) / 4)
		c := tickColor(r, g, b)
		for y := 0; y < tickHeight; y++ {
			i := out.PixOffset(x, y)
			out.Pix[i] = c
			out.Pix[i+1] = c
			out.Pix[i+2] = c
			out.Pix[i+3] = 255
		}
	}
	return out
}

// tickColor picks black or white for a tick mark over the given ramp
// color, whichever reads better against it.
func tickColor(r, g, b uint8) uint8 {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return 0
	}
	return 255
}
