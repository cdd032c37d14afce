package heatmap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Normalization selects the statistical method used to rescale heatmap
// values into [0,1]. The token from the command line is resolved into a
// Normalization exactly once at the validation boundary; everything past
// that dispatches on the value.
type Normalization int

const (
	// MinMax rescales linearly between the matrix minimum and maximum.
	MinMax Normalization = iota

	// ZScore centers on the mean and divides by the population standard
	// deviation. Not bounded to [0,1] by construction; the final clamp
	// still applies.
	ZScore

	// Percentile rescales linearly between the 5th- and 95th-percentile
	// values (nearest-rank), clamping the tails.
	Percentile
)

// String returns the lowercase token for the method.
func (n Normalization) String() string {
	switch n {
	case MinMax:
		return "minmax"
	case ZScore:
		return "zscore"
	case Percentile:
		return "percentile"
	default:
		return fmt.Sprintf("normalization(%d)", int(n))
	}
}

// ParseNormalization resolves a case-insensitive method name.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(s) {
	case "minmax":
		return MinMax, nil
	case "zscore":
		return ZScore, nil
	case "percentile":
		return Percentile, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q (want minmax, zscore, or percentile)", s)
	}
}

// Normalize rescales m into [0,1] using the selected method and returns a
// new matrix.
//
// All three methods operate over the full flattened matrix, not per row
// or column. Each has a degenerate passthrough that avoids division by
// zero: MinMax when max == min, ZScore when the population stddev is 0,
// Percentile when the two percentile values coincide. Every output cell
// is clamped to [0,1] regardless of method — ZScore in particular
// produces out-of-range values by construction, and the degenerate
// passthroughs can leave arbitrary input values in place.
func Normalize(m *Matrix, method Normalization) *Matrix {
	out := m.clone()
	if len(out.Data) == 0 {
		return out
	}

	switch method {
	case MinMax:
		min := floats.Min(out.Data)
		max := floats.Max(out.Data)
		if max != min {
			for i, v := range out.Data {
				out.Data[i] = (v - min) / (max - min)
			}
		}

	case ZScore:
		mean := stat.Mean(out.Data, nil)
		stddev := stat.PopStdDev(out.Data, nil)
		if stddev != 0 {
			for i, v := range out.Data {
				out.Data[i] = (v - mean) / stddev
			}
		}

	case Percentile:
		sorted := append([]float64(nil), out.Data...)
		sort.Float64s(sorted)
		n := float64(len(sorted))
		lo := sorted[int(math.Floor(0.05*n))]
		hi := sorted[int(math.Floor(0.95*n))]
		if hi != lo {
			for i, v := range out.Data {
				out.Data[i] = (v - lo) / (hi - lo)
			}
		}
	}

	for i, v := range out.Data {
		if v < 0 {
			out.Data[i] = 0
		} else if v > 1 {
			out.Data[i] = 1
		}
	}
	return out
}
