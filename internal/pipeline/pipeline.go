// Package pipeline runs the heatmap overlay pipeline end to end.
//
// The stages are strictly sequential — decode base, load heatmap, resize,
// normalize, colormap, composite, encode — with each stage owning its
// output until it hands it to the next. Two failures are recovered rather
// than surfaced: an unreadable base image falls back to a synthetic demo
// base, and an unloadable heatmap falls back to a synthetic gradient
// layer, so a run always produces an output PNG. Everything else aborts
// with a descriptive error.
//
// A run is stateless and fully synchronous; concurrent runs share
// nothing.
package pipeline

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/medimaging/heatmap-overlay/internal/config"
	"github.com/medimaging/heatmap-overlay/internal/heatmap"
	"github.com/medimaging/heatmap-overlay/internal/pixel"
	"github.com/medimaging/heatmap-overlay/internal/render"
)

// Runner executes pipeline runs. It holds only the logger; all run
// configuration arrives as explicit parameters.
type Runner struct {
	log zerolog.Logger
}

// New creates a Runner logging through log.
func New(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes one overlay run with the given options.
//
// Options are validated first, before any file is touched; a validation
// failure wraps config.ErrValidation. After validation the run can only
// fail on PNG encoding or writing — earlier stage failures are recovered
// via the demo fallbacks.
func (r *Runner) Run(opts *config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	base := r.loadBase(opts)
	bounds := base.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	layer := r.buildLayer(opts, width, height)
	out := render.Composite(base, layer)
	if opts.Legend {
		out = render.AttachLegend(out, opts.Colormap)
	}

	if err := imaging.Save(out, opts.OutputPath); err != nil {
		return fmt.Errorf("failed to write output PNG: %w", err)
	}
	r.log.Info().
		Str("output", opts.OutputPath).
		Int("width", out.Bounds().Dx()).
		Int("height", out.Bounds().Dy()).
		Msg("wrote overlay")
	return nil
}

// loadBase decodes the base image, falling back to the synthetic demo
// base when demo mode is set or the input cannot be decoded.
func (r *Runner) loadBase(opts *config.Options) *image.NRGBA {
	if opts.Demo {
		r.log.Info().Msg("demo mode: using synthetic base image")
		return render.DemoBase()
	}
	raster, err := pixel.LoadFile(opts.InputPath)
	if err != nil {
		r.log.Warn().Err(err).Str("input", opts.InputPath).
			Msg("base image unavailable, using synthetic demo base")
		return render.DemoBase()
	}
	r.log.Debug().
		Int("width", raster.Width).
		Int("height", raster.Height).
		Msg("decoded base image")
	return raster.ToRGBA()
}

// buildLayer produces the heat layer: data-driven when a heatmap loads,
// otherwise the synthetic gradient.
func (r *Runner) buildLayer(opts *config.Options, width, height int) *image.NRGBA {
	if opts.HeatmapPath != "" {
		m, err := heatmap.Load(opts.HeatmapPath)
		if err != nil {
			r.log.Warn().Err(err).Str("heatmap", opts.HeatmapPath).
				Msg("heatmap unavailable, using synthetic gradient layer")
		} else {
			if m.Rows != height || m.Cols != width {
				m = heatmap.Resize(m, height, width)
			}
			m = heatmap.Normalize(m, opts.Normalization)
			r.log.Debug().
				Stringer("colormap", opts.Colormap).
				Stringer("normalization", opts.Normalization).
				Str("ramp", opts.Colormap.Hex(0)+".."+opts.Colormap.Hex(1)).
				Float64("opacity", opts.Opacity).
				Msg("building heat layer")
			layer := render.BuildLayer(m, opts.Colormap, opts.Opacity)
			return render.Smooth(layer, opts.Smooth)
		}
	}
	return render.GradientLayer(width, height)
}
