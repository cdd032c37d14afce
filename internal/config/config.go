// Package config holds the command-line options for a pipeline run and
// validates them at the process boundary.
//
// Token-to-enum resolution (colormap, normalization) happens exactly once
// here; past Validate, the pipeline only ever sees the closed enum values
// and never re-parses a string.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/medimaging/heatmap-overlay/internal/colormap"
	"github.com/medimaging/heatmap-overlay/internal/heatmap"
)

// ErrValidation reports an option rejected at the boundary: out-of-range
// opacity, an unknown colormap or normalization token, or a missing
// required path. Validation runs before any file I/O.
var ErrValidation = errors.New("invalid option")

// Options carries one pipeline run's configuration. Colormap and
// Normalization are only meaningful after Validate has resolved them from
// their name fields.
type Options struct {
	// InputPath is the base image to overlay. If it is missing or cannot
	// be decoded the pipeline falls back to a synthetic demo base.
	InputPath string

	// OutputPath is where the composited PNG is written. Required.
	OutputPath string

	// HeatmapPath is the optional heatmap data file (.json, .csv, .bin).
	// Empty means the synthetic gradient layer is used.
	HeatmapPath string

	// ColormapName and NormalizationName are the raw CLI tokens,
	// case-insensitive.
	ColormapName      string
	NormalizationName string

	// Opacity is the uniform heat-layer opacity in [0,1].
	Opacity float64

	// Smooth is the Gaussian blur radius applied to the heat layer;
	// 0 disables smoothing.
	Smooth float64

	// Legend appends a colormap legend strip to the output.
	Legend bool

	// Demo forces the synthetic demo base image regardless of InputPath.
	Demo bool

	// Colormap and Normalization are the resolved enum values, set by
	// Validate.
	Colormap      colormap.Kind
	Normalization heatmap.Normalization
}

// Parse builds Options from command-line arguments (excluding the program
// name). Defaults: colormap jet, normalization minmax, opacity 0.5.
func Parse(name string, args []string) (*Options, error) {
	opts := &Options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opts.InputPath, "input", "", "base image path (PNG, JPEG, GIF, TIFF, BMP)")
	fs.StringVar(&opts.OutputPath, "output", "", "output PNG path (required)")
	fs.StringVar(&opts.HeatmapPath, "heatmap", "", "heatmap data path (.json, .csv, .bin)")
	fs.StringVar(&opts.ColormapName, "colormap", "jet", "colormap: red, hot, jet, viridis, plasma")
	fs.StringVar(&opts.NormalizationName, "normalize", "minmax", "normalization: minmax, zscore, percentile")
	fs.Float64Var(&opts.Opacity, "opacity", 0.5, "heat layer opacity in [0,1]")
	fs.Float64Var(&opts.Smooth, "smooth", 0, "Gaussian blur radius for the heat layer (0 = off)")
	fs.BoolVar(&opts.Legend, "legend", false, "append a colormap legend strip")
	fs.BoolVar(&opts.Demo, "demo", false, "use a synthetic demo base image")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks boundary constraints and resolves the colormap and
// normalization tokens. It touches no files, so an invalid run fails
// before any decoding work begins.
func (o *Options) Validate() error {
	if o.OutputPath == "" {
		return fmt.Errorf("%w: -output is required", ErrValidation)
	}
	if o.Opacity < 0 || o.Opacity > 1 {
		return fmt.Errorf("%w: opacity %v outside [0.0, 1.0]", ErrValidation, o.Opacity)
	}
	if o.Smooth < 0 {
		return fmt.Errorf("%w: smooth radius %v is negative", ErrValidation, o.Smooth)
	}

	kind, err := colormap.ParseKind(o.ColormapName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	o.Colormap = kind

	norm, err := heatmap.ParseNormalization(o.NormalizationName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	o.Normalization = norm

	return nil
}
