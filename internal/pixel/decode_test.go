package pixel

import (
	"encoding/binary"
	"errors"
	"testing"
)

// le16 packs uint16 samples into a little-endian byte buffer.
func le16(t *testing.T, samples ...uint16) []byte {
	t.Helper()
	buf := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return buf
}

func TestDecode_8Bit1Sample(t *testing.T) {
	buf := []byte{0, 64, 128, 255}
	r, err := Decode(buf, 8, 1, 2, 2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if r.Width != 2 || r.Height != 2 || r.Samples != 1 {
		t.Errorf("geometry: got %dx%d/%d, want 2x2/1", r.Width, r.Height, r.Samples)
	}
	for i, want := range buf {
		if r.Pix[i] != want {
			t.Errorf("Pix[%d]: got %d, want %d", i, r.Pix[i], want)
		}
	}
}

func TestDecode_8Bit1Sample_DimensionMismatch(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, 8, 1, 2, 2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestDecode_16Bit1Sample_FullRangeRescale(t *testing.T) {
	// min=100, max=1100, range=1000: 100->0, 600->128, 1100->255
	buf := le16(t, 100, 600, 1100, 100)
	r, err := Decode(buf, 16, 1, 2, 2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []uint8{0, 128, 255, 0}
	for i, w := range want {
		if r.Pix[i] != w {
			t.Errorf("Pix[%d]: got %d, want %d", i, r.Pix[i], w)
		}
	}
}

func TestDecode_16Bit1Sample_ConstantBuffer(t *testing.T) {
	// max == min: the range is forced to 1, everything maps to 0.
	buf := le16(t, 500, 500, 500, 500)
	r, err := Decode(buf, 16, 1, 2, 2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, v := range r.Pix {
		if v != 0 {
			t.Errorf("Pix[%d]: got %d, want 0", i, v)
		}
	}
}

func TestDecode_16Bit1Sample_DimensionMismatch(t *testing.T) {
	_, err := Decode(le16(t, 1, 2, 3), 16, 1, 2, 2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestDecode_8Bit3Sample_Luma(t *testing.T) {
	tests := []struct {
		name    string
		rgb     [3]uint8
		want    uint8
	}{
		{"white", [3]uint8{255, 255, 255}, 255},
		{"black", [3]uint8{0, 0, 0}, 0},
		{"red", [3]uint8{255, 0, 0}, 76},    // round(0.299*255)
		{"green", [3]uint8{0, 255, 0}, 150}, // round(0.587*255)
		{"blue", [3]uint8{0, 0, 255}, 29},   // round(0.114*255)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte{tt.rgb[0], tt.rgb[1], tt.rgb[2]}
			r, err := Decode(buf, 8, 3, 1, 1)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if r.Samples != 1 {
				t.Fatalf("Samples: got %d, want 1", r.Samples)
			}
			if r.Pix[0] != tt.want {
				t.Errorf("luma: got %d, want %d", r.Pix[0], tt.want)
			}
		})
	}
}

func TestDecode_16Bit3Sample(t *testing.T) {
	// One pixel, joint rescale: min=0, max=1000 -> (255, 0, 128) -> luma
	buf := le16(t, 1000, 0, 500)
	r, err := Decode(buf, 16, 3, 1, 1)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// round(0.299*255 + 0.587*0 + 0.114*128) = round(90.837) = 91
	if r.Pix[0] != 91 {
		t.Errorf("luma: got %d, want 91", r.Pix[0])
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	tests := []struct {
		name    string
		bits    int
		samples int
	}{
		{"12-bit", 12, 1},
		{"32-bit", 32, 1},
		{"two samples", 8, 2},
		{"four samples", 16, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(make([]byte, 64), tt.bits, tt.samples, 2, 2)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("got %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestToRGBA_OpaquePromotion(t *testing.T) {
	r, err := Decode([]byte{10, 20, 30, 40}, 8, 1, 2, 2)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	img := r.ToRGBA()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v, want 2x2", img.Bounds())
	}
	i := img.PixOffset(1, 1)
	if img.Pix[i] != 40 || img.Pix[i+1] != 40 || img.Pix[i+2] != 40 || img.Pix[i+3] != 255 {
		t.Errorf("pixel (1,1): got (%d,%d,%d,%d), want (40,40,40,255)",
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
	}
}
