package render

import (
	"image"
	"math"
)

// Composite alpha-overlays the heat layer onto the base image and returns
// the result as a new image.
//
// This is the standard "over" operation with straight (non-premultiplied)
// alpha, computed per channel in normalized [0,1] arithmetic:
//
//	out = src*srcA + dst*(1-srcA)
//
// where the heat layer is the source and the base the destination. The
// base is opaque, so the composite stays opaque. The layer must have the
// same dimensions as the base; the pipeline resizes the matrix before the
// layer is built, so a mismatch is a programming error and out-of-range
// reads are not guarded here.
func Composite(base, layer *image.NRGBA) *image.NRGBA {
	bounds := base.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := base.PixOffset(x, y)
			a := float64(layer.Pix[i+3]) / 255
			for ch := 0; ch < 3; ch++ {
				src := float64(layer.Pix[i+ch]) / 255
				dst := float64(base.Pix[i+ch]) / 255
				out.Pix[i+ch] = uint8(math.Round((src*a + dst*(1-a)) * 255))
			}
			out.Pix[i+3] = base.Pix[i+3]
		}
	}
	return out
}
