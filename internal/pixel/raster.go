package pixel

import "image"

// Raster is an intensity raster with 8-bit samples.
//
// The decoder normalizes every supported input (8- or 16-bit, 1 or 3
// samples per pixel) down to 8-bit samples, so Pix always holds one byte
// per sample. Samples is 1 for the grayscale rasters the decoder emits;
// the 3-sample form only exists transiently while color input is being
// reduced to luma.
//
// Invariant: len(Pix) == Width*Height*Samples.
type Raster struct {
	// Pix holds the samples in row-major order, one byte each.
	Pix []uint8

	// Width is the raster width in pixels (columns).
	Width int

	// Height is the raster height in pixels (rows).
	Height int

	// Samples is the number of samples per pixel (1 or 3).
	Samples int
}

// At returns the intensity at (x, y) of a single-channel raster.
func (r *Raster) At(x, y int) uint8 {
	return r.Pix[y*r.Width*r.Samples+x*r.Samples]
}

// ToRGBA promotes a single-channel raster to an opaque RGBA image.
//
// Every pixel gets R=G=B=intensity and alpha 255. The result is the base
// layer for compositing; it is never mutated by later stages, which draw
// onto their own copy.
func (r *Raster) ToRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			v := r.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i] = v
			out.Pix[i+1] = v
			out.Pix[i+2] = v
			out.Pix[i+3] = 255
		}
	}
	return out
}
