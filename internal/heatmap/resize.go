package heatmap

// Resize resamples m to rows x cols by nearest neighbor.
//
// For each target cell (r, c) the source index is floor(r/rows*srcRows),
// clamped to srcRows-1 (and likewise for columns). No interpolation —
// heatmaps are coarse overlays, so the cheap deterministic mapping is
// enough. Always returns a new matrix; callers skip the call when the
// dimensions already match.
func Resize(m *Matrix, rows, cols int) *Matrix {
	out := NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		sr := r * m.Rows / rows
		if sr > m.Rows-1 {
			sr = m.Rows - 1
		}
		for c := 0; c < cols; c++ {
			sc := c * m.Cols / cols
			if sc > m.Cols-1 {
				sc = m.Cols - 1
			}
			out.Set(r, c, m.At(sr, sc))
		}
	}
	return out
}
