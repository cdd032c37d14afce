package pixel

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder (16-bit grayscale)
)

// LoadFile reads an image file and decodes it to an 8-bit grayscale
// Raster.
//
// Supported containers are PNG, JPEG, GIF, TIFF, and BMP. The decoded
// image is flattened into the raw sample-buffer form the Decode contract
// expects and then run through Decode, so file input follows the exact
// same numeric paths as raw buffers:
//
//   - *image.Gray   -> 8-bit single-sample passthrough
//   - *image.Gray16 -> 16-bit full-range rescale (common for medical TIFF)
//   - anything else -> 8-bit RGB, reduced to BT.601 luma
//
// Returns the underlying open/decode error when the file is missing or
// not a valid image; callers decide whether that is fatal.
func LoadFile(path string) (*Raster, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open base image: %w", err)
	}
	return FromImage(img)
}

// FromImage flattens a decoded image into the decoder's raw-buffer
// contract and decodes it.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			copy(buf[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return Decode(buf, 8, 1, h, w)

	case *image.Gray16:
		// Gray16 stores big-endian samples; the decoder takes little-endian.
		buf := make([]uint8, w*h*2)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := binary.BigEndian.Uint16(src.Pix[y*src.Stride+x*2:])
				binary.LittleEndian.PutUint16(buf[(y*w+x)*2:], v)
			}
		}
		return Decode(buf, 16, 1, h, w)

	default:
		rgba := imaging.Clone(img)
		buf := make([]uint8, w*h*3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := rgba.PixOffset(x, y)
				j := (y*w + x) * 3
				buf[j] = rgba.Pix[i]
				buf[j+1] = rgba.Pix[i+1]
				buf[j+2] = rgba.Pix[i+2]
			}
		}
		return Decode(buf, 8, 3, h, w)
	}
}
