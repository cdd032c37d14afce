// Package colormap maps normalized heat intensities to colors.
//
// Each colormap is a fixed piecewise-linear function from a scalar in
// [0,1] to an RGB triple. The breakpoints are part of the output contract
// — overlays rendered by different builds must match — so the ramps are
// spelled out rather than delegated to a palette library. Viridis and
// Plasma are deliberately simplified few-segment approximations of the
// reference curves, not the real polynomial fits.
package colormap

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind selects one of the supported color ramps. The token from the
// command line is resolved into a Kind exactly once at the validation
// boundary; the pipeline dispatches on the value from then on.
type Kind int

const (
	// Red ramps linearly from black to pure red.
	Red Kind = iota

	// Hot sweeps black -> red -> yellow -> white over three segments.
	Hot

	// Jet sweeps blue -> cyan -> green -> yellow -> red over four equal
	// segments (the classic simplified jet).
	Jet

	// Viridis is a three-segment approximation of matplotlib's viridis.
	Viridis

	// Plasma is a two-segment approximation of matplotlib's plasma.
	Plasma
)

// viridisStops and plasmaStops anchor the simplified perceptual ramps at
// evenly spaced positions.
var (
	viridisStops = [][3]uint8{{68, 1, 84}, {49, 104, 142}, {53, 183, 121}, {253, 231, 37}}
	plasmaStops  = [][3]uint8{{13, 8, 135}, {203, 70, 121}, {240, 249, 33}}
)

// String returns the lowercase token for the colormap.
func (k Kind) String() string {
	switch k {
	case Red:
		return "red"
	case Hot:
		return "hot"
	case Jet:
		return "jet"
	case Viridis:
		return "viridis"
	case Plasma:
		return "plasma"
	default:
		return fmt.Sprintf("colormap(%d)", int(k))
	}
}

// ParseKind resolves a case-insensitive colormap name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "red":
		return Red, nil
	case "hot":
		return Hot, nil
	case "jet":
		return Jet, nil
	case "viridis":
		return Viridis, nil
	case "plasma":
		return Plasma, nil
	default:
		return 0, fmt.Errorf("unknown colormap %q (want red, hot, jet, viridis, or plasma)", s)
	}
}

// Map converts a normalized intensity in [0,1] to an RGB triple.
//
// Callers clamp before calling; values outside [0,1] are evaluated on the
// nearest segment and may fall outside the ramp's endpoint colors.
func (k Kind) Map(v float64) (r, g, b uint8) {
	switch k {
	case Red:
		return scale(v), 0, 0

	case Hot:
		switch {
		case v < 0.33:
			return scale(v / 0.33), 0, 0
		case v < 0.66:
			return 255, scale((v - 0.33) / 0.33), 0
		default:
			return 255, 255, scale((v - 0.66) / 0.34)
		}

	case Jet:
		switch {
		case v < 0.25:
			return 0, scale(v / 0.25), 255
		case v < 0.5:
			return 0, 255, scale(1 - (v-0.25)/0.25)
		case v < 0.75:
			return scale((v - 0.5) / 0.25), 255, 0
		default:
			return 255, scale(1 - (v-0.75)/0.25), 0
		}

	case Viridis:
		return ramp(viridisStops, v)

	case Plasma:
		return ramp(plasmaStops, v)

	default:
		return 0, 0, 0
	}
}

// Hex returns the ramp color at v as a "#rrggbb" string, for diagnostics.
func (k Kind) Hex(v float64) string {
	r, g, b := k.Map(v)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// ramp interpolates linearly between evenly spaced RGB stops.
func ramp(stops [][3]uint8, v float64) (uint8, uint8, uint8) {
	if v <= 0 {
		s := stops[0]
		return s[0], s[1], s[2]
	}
	if v >= 1 {
		s := stops[len(stops)-1]
		return s[0], s[1], s[2]
	}
	pos := v * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	t := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return lerp(a[0], b[0], t), lerp(a[1], b[1], t), lerp(a[2], b[2], t)
}

// lerp interpolates between two 8-bit channel values.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

// scale maps a segment-local position in [0,1] to an 8-bit channel value,
// clamping so that values just outside the segment cannot wrap.
func scale(t float64) uint8 {
	v := math.Round(t * 255)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}
