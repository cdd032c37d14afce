package render

import (
	"image"
	"image/draw"

	"github.com/medimaging/heatmap-overlay/internal/colormap"
)

// DemoSize is the edge length of the synthetic demo base image.
const DemoSize = 512

// DemoBase generates the synthetic base image used when no input image
// can be decoded (or demo mode is requested): a DemoSize x DemoSize
// diagonal grayscale gradient. Best-effort stand-in so the pipeline
// always completes.
func DemoBase() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, DemoSize, DemoSize))
	for y := 0; y < DemoSize; y++ {
		for x := 0; x < DemoSize; x++ {
			v := uint8((x + y) * 255 / (2 * (DemoSize - 1)))
			i := out.PixOffset(x, y)
			out.Pix[i] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
			out.Pix[i+3] = 255
		}
	}
	return out
}

// GradientLayer generates the synthetic heat layer used when no heatmap
// data is available: red scales with horizontal position and alpha scales
// linearly from 50 to 200 with vertical position. A visualization
// stand-in, not a statistical result.
func GradientLayer(width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		a := uint8(50)
		if height > 1 {
			a = uint8(50 + y*150/(height-1))
		}
		for x := 0; x < width; x++ {
			r := uint8(0)
			if width > 1 {
				r = uint8(x * 255 / (width - 1))
			}
			i := out.PixOffset(x, y)
			out.Pix[i] = r
			out.Pix[i+1] = 0
			out.Pix[i+2] = 0
			out.Pix[i+3] = a
		}
	}
	return out
}

// legendHeight is the pixel height of the attached legend strip.
const legendHeight = 24

// AttachLegend appends a colormap legend strip below the composited
// image, growing it by legendHeight rows.
func AttachLegend(img *image.NRGBA, kind colormap.Kind) *image.NRGBA {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	out := image.NewNRGBA(image.Rect(0, 0, w, h+legendHeight))
	draw.Draw(out, image.Rect(0, 0, w, h), img, bounds.Min, draw.Src)
	strip := colormap.Legend(kind, w, legendHeight)
	draw.Draw(out, image.Rect(0, h, w, h+legendHeight), strip, image.Point{}, draw.Src)
	return out
}
