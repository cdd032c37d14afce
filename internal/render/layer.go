package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/medimaging/heatmap-overlay/internal/colormap"
	"github.com/medimaging/heatmap-overlay/internal/heatmap"
)

// BuildLayer maps a normalized heatmap matrix through a colormap into an
// RGBA heat layer of Cols x Rows pixels.
//
// Cell values are clamped to [0,1] before mapping, so even a ZScore
// matrix that skipped its degenerate passthrough renders sanely. Alpha is
// round(opacity*255), uniform across the layer — per-pixel alpha only
// appears in the synthetic gradient fallback.
func BuildLayer(m *heatmap.Matrix, kind colormap.Kind, opacity float64) *image.NRGBA {
	alpha := uint8(math.Round(opacity * 255))
	out := image.NewNRGBA(image.Rect(0, 0, m.Cols, m.Rows))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			v := m.At(r, c)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			red, green, blue := kind.Map(v)
			i := out.PixOffset(c, r)
			out.Pix[i] = red
			out.Pix[i+1] = green
			out.Pix[i+2] = blue
			out.Pix[i+3] = alpha
		}
	}
	return out
}

// Smooth applies a Gaussian blur to the heat layer. A radius of 0 (or
// less) disables it. Blurring happens after colormapping, so it softens
// the rendered overlay rather than the underlying statistics; the
// round-trip through bild's RGBA working format makes it approximate, not
// bit-exact.
func Smooth(layer *image.NRGBA, radius float64) *image.NRGBA {
	if radius <= 0 {
		return layer
	}
	blurred := blur.Gaussian(layer, radius)
	out := image.NewNRGBA(blurred.Bounds())
	draw.Draw(out, out.Bounds(), blurred, image.Point{}, draw.Src)
	return out
}
