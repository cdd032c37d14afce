package heatmap

import "testing"

func TestResize_Identity(t *testing.T) {
	m := NewMatrix(3, 4)
	for i := range m.Data {
		m.Data[i] = float64(i) * 1.5
	}
	out := Resize(m, 3, 4)
	if out == m {
		t.Fatal("Resize must return a new matrix")
	}
	for i := range m.Data {
		if out.Data[i] != m.Data[i] {
			t.Errorf("Data[%d]: got %v, want %v", i, out.Data[i], m.Data[i])
		}
	}
}

func TestResize_Downscale(t *testing.T) {
	// 4x4 -> 2x2 picks cells (0,0), (0,2), (2,0), (2,2).
	m := NewMatrix(4, 4)
	for i := range m.Data {
		m.Data[i] = float64(i)
	}
	out := Resize(m, 2, 2)
	want := []float64{0, 2, 8, 10}
	for i, w := range want {
		if out.Data[i] != w {
			t.Errorf("Data[%d]: got %v, want %v", i, out.Data[i], w)
		}
	}
}

func TestResize_Upscale(t *testing.T) {
	// 2x2 -> 4x4: each source cell covers a 2x2 block.
	m := NewMatrix(2, 2)
	copy(m.Data, []float64{1, 2, 3, 4})
	out := Resize(m, 4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := m.At(r/2, c/2)
			if out.At(r, c) != want {
				t.Errorf("At(%d,%d): got %v, want %v", r, c, out.At(r, c), want)
			}
		}
	}
}

func TestResize_NonIntegerRatio(t *testing.T) {
	// 3 -> 2 along both axes: floor(t/2*3) gives source indices 0 and 1.
	m := NewMatrix(3, 3)
	for i := range m.Data {
		m.Data[i] = float64(i)
	}
	out := Resize(m, 2, 2)
	want := []float64{0, 1, 3, 4}
	for i, w := range want {
		if out.Data[i] != w {
			t.Errorf("Data[%d]: got %v, want %v", i, out.Data[i], w)
		}
	}
}
