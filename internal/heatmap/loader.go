package heatmap

import (
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrFormat reports a malformed or unsupported heatmap file: invalid
// JSON/CSV/binary content, an unknown file extension, or a recognized but
// unimplemented format.
var ErrFormat = errors.New("invalid heatmap format")

// maxCells bounds the matrix size accepted from a binary header, so a
// corrupt 8-byte header cannot trigger a multi-gigabyte allocation.
const maxCells = 100_000_000

// Load reads a heatmap matrix from a file, dispatching on the file
// extension.
//
// Supported formats:
//   - ".json": {"data": [[...], ...]} with numeric inner arrays
//   - ".csv":  headerless rows of comma-separated floats
//   - ".bin":  u32 rows (LE) | u32 cols (LE) | rows*cols x f32 (LE), row-major
//   - ".npy":  recognized but not yet supported; always fails
//
// Malformed content fails with an error wrapping ErrFormat and naming the
// offending file (and field, where one can be identified). Truncated
// binary files fail with an error wrapping io.ErrUnexpectedEOF at the
// point the short read occurs. Errors are not retried.
func Load(path string) (*Matrix, error) {
	var parse func(io.Reader) (*Matrix, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		parse = parseJSON
	case ".csv":
		parse = parseCSV
	case ".bin":
		parse = parseBinary
	case ".npy":
		// Deliberate placeholder, not a silent no-op. Fails before any
		// read, regardless of file contents.
		return nil, fmt.Errorf("%w: npy heatmaps are not yet supported", ErrFormat)
	default:
		return nil, fmt.Errorf("%w: unknown heatmap extension %q", ErrFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open heatmap file: %w", err)
	}
	defer f.Close()

	m, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// parseJSON reads a {"data": [[...], ...]} document.
//
// The column count is taken from the first row. Later rows are NOT
// validated against it: shorter rows leave the remaining cells zero and
// longer rows are truncated. This tolerance for ragged input is
// intentional, matching the historical loader behavior; strict per-row
// validation would reject files that have always loaded.
func parseJSON(r io.Reader) (*Matrix, error) {
	var doc struct {
		Data [][]float64 `json:"data"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Data == nil {
		return nil, fmt.Errorf("%w: missing \"data\" field", ErrFormat)
	}
	if len(doc.Data) == 0 || len(doc.Data[0]) == 0 {
		return nil, fmt.Errorf("%w: \"data\" array is empty", ErrFormat)
	}

	rows := len(doc.Data)
	cols := len(doc.Data[0])
	m := NewMatrix(rows, cols)
	for r, row := range doc.Data {
		n := len(row)
		if n > cols {
			n = cols
		}
		copy(m.Data[r*cols:r*cols+n], row[:n])
	}
	return m, nil
}

// parseCSV reads headerless rows of comma-separated floats. The first
// record fixes the column count; every field must parse as a float.
func parseCSV(r io.Reader) (*Matrix, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty CSV file", ErrFormat)
	}

	rows := len(records)
	cols := len(records[0])
	m := NewMatrix(rows, cols)
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %q is not a number", ErrFormat, i, j, field)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// parseBinary reads the fixed binary layout: an 8-byte little-endian
// header of two u32 (rows, cols) followed by rows*cols little-endian f32
// in row-major order, with no padding.
func parseBinary(r io.Reader) (*Matrix, error) {
	var header struct {
		Rows uint32
		Cols uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("truncated heatmap header: %w", unexpectedEOF(err))
	}
	cells := int(header.Rows) * int(header.Cols)
	if cells == 0 || cells > maxCells {
		return nil, fmt.Errorf("%w: implausible dimensions %dx%d", ErrFormat, header.Rows, header.Cols)
	}

	values := make([]float32, cells)
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("truncated heatmap data: %w", unexpectedEOF(err))
	}

	m := NewMatrix(int(header.Rows), int(header.Cols))
	for i, v := range values {
		m.Data[i] = float64(v)
	}
	return m, nil
}

// WriteBinary writes m in the binary heatmap layout. Values are narrowed
// to f32 on the wire; a matrix loaded from binary round-trips exactly.
func WriteBinary(w io.Writer, m *Matrix) error {
	header := struct {
		Rows uint32
		Cols uint32
	}{uint32(m.Rows), uint32(m.Cols)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write heatmap header: %w", err)
	}
	values := make([]float32, len(m.Data))
	for i, v := range m.Data {
		values[i] = float32(v)
	}
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		return fmt.Errorf("failed to write heatmap data: %w", err)
	}
	return nil
}

// unexpectedEOF maps a bare io.EOF from a partial binary.Read to
// io.ErrUnexpectedEOF, since inside a declared-length payload any EOF is
// a truncation.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
