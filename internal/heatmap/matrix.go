package heatmap

// Matrix is a dense rows x cols heatmap matrix stored row-major.
//
// Values are unconstrained at load time; only the Normalize stage makes
// promises about their range. Each pipeline stage produces a new Matrix
// rather than mutating its input, so downstream consumers never observe
// partially transformed data.
type Matrix struct {
	Rows int
	Cols int

	// Data holds Rows*Cols values in row-major order. The binary wire
	// format carries 32-bit floats; they widen exactly to float64 here.
	Data []float64
}

// NewMatrix creates a zero-valued rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.Data[r*m.Cols+c] = v
}

// clone returns a deep copy of the matrix.
func (m *Matrix) clone() *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}
