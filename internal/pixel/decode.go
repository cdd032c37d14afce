package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedFormat reports a bits-allocated / samples-per-pixel
	// combination the decoder does not handle.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrDimensionMismatch reports a pixel buffer whose length disagrees
	// with the declared dimensions.
	ErrDimensionMismatch = errors.New("pixel buffer size mismatch")
)

// Decode converts a raw medical-image pixel buffer into an 8-bit
// single-channel Raster.
//
// Parameters:
//   - buf: The raw sample buffer. 16-bit samples are little-endian.
//   - bitsAllocated: Declared sample size in bits. Must be 8 or 16.
//   - samplesPerPixel: Declared samples per pixel. Must be 1 or 3.
//   - rows, cols: Declared image dimensions.
//
// Returns ErrDimensionMismatch (wrapped, with the expected and actual
// sizes) when the buffer length does not match the declared geometry, and
// ErrUnsupportedFormat for any bits/samples combination outside
// {8,16}x{1,3}.
//
// # Bit-depth handling
//
// 8-bit single-sample buffers are used directly as intensities. 16-bit
// buffers are rescaled to 8 bits with a full-range linear fit: min and max
// are taken over all samples, and each sample v maps to
//
//	round(clamp((v-min)/(max-min)*255, 0, 255))
//
// with the range forced to 1 when max == min. This is a generic
// dynamic-range fit, not clinical windowing; images carrying Window
// Center/Width metadata will render differently than a DICOM viewer.
//
// # Color input
//
// 3-sample buffers are decoded to RGB (16-bit samples go through the same
// joint full-range rescale first) and then reduced to luma with ITU-R
// BT.601 weights (0.299, 0.587, 0.114). The result is treated as a
// single-channel raster from then on.
func Decode(buf []byte, bitsAllocated, samplesPerPixel, rows, cols int) (*Raster, error) {
	switch {
	case bitsAllocated == 8 && samplesPerPixel == 1:
		if len(buf) != rows*cols {
			return nil, fmt.Errorf("%w: 8-bit gray needs %d bytes, got %d", ErrDimensionMismatch, rows*cols, len(buf))
		}
		return &Raster{Pix: buf, Width: cols, Height: rows, Samples: 1}, nil

	case bitsAllocated == 16 && samplesPerPixel == 1:
		want := rows * cols * 2
		if len(buf) != want {
			return nil, fmt.Errorf("%w: 16-bit gray needs %d bytes, got %d", ErrDimensionMismatch, want, len(buf))
		}
		return &Raster{Pix: rescale16(buf), Width: cols, Height: rows, Samples: 1}, nil

	case bitsAllocated == 8 && samplesPerPixel == 3:
		want := rows * cols * 3
		if len(buf) != want {
			return nil, fmt.Errorf("%w: 8-bit RGB needs %d bytes, got %d", ErrDimensionMismatch, want, len(buf))
		}
		rgb := &Raster{Pix: buf, Width: cols, Height: rows, Samples: 3}
		return rgb.toLuma(), nil

	case bitsAllocated == 16 && samplesPerPixel == 3:
		want := rows * cols * 6
		if len(buf) != want {
			return nil, fmt.Errorf("%w: 16-bit RGB needs %d bytes, got %d", ErrDimensionMismatch, want, len(buf))
		}
		rgb := &Raster{Pix: rescale16(buf), Width: cols, Height: rows, Samples: 3}
		return rgb.toLuma(), nil

	default:
		return nil, fmt.Errorf("%w: %d bits, %d samples per pixel", ErrUnsupportedFormat, bitsAllocated, samplesPerPixel)
	}
}

// rescale16 maps little-endian 16-bit samples to 8 bits with a full-range
// linear fit over all samples in the buffer.
func rescale16(buf []byte) []uint8 {
	n := len(buf) / 2
	samples := make([]uint16, n)
	for i := 0; i < n; i++ {
		samples[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}

	min, max := samples[0], samples[0]
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := float64(max) - float64(min)
	if rng == 0 {
		rng = 1.0
	}

	out := make([]uint8, n)
	for i, v := range samples {
		scaled := (float64(v) - float64(min)) / rng * 255
		if scaled < 0 {
			scaled = 0
		} else if scaled > 255 {
			scaled = 255
		}
		out[i] = uint8(math.Round(scaled))
	}
	return out
}

// toLuma reduces a 3-sample RGB raster to a single luma channel using
// ITU-R BT.601 weights.
func (r *Raster) toLuma() *Raster {
	out := make([]uint8, r.Width*r.Height)
	for i := range out {
		red := float64(r.Pix[i*3])
		green := float64(r.Pix[i*3+1])
		blue := float64(r.Pix[i*3+2])
		out[i] = uint8(math.Round(0.299*red + 0.587*green + 0.114*blue))
	}
	return &Raster{Pix: out, Width: r.Width, Height: r.Height, Samples: 1}
}
