package config

import (
	"errors"
	"testing"

	"github.com/medimaging/heatmap-overlay/internal/colormap"
	"github.com/medimaging/heatmap-overlay/internal/heatmap"
)

func TestParse_Defaults(t *testing.T) {
	opts, err := Parse("heatmap-overlay", []string{"-input", "in.png", "-output", "out.png"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.ColormapName != "jet" {
		t.Errorf("colormap default: got %q, want jet", opts.ColormapName)
	}
	if opts.NormalizationName != "minmax" {
		t.Errorf("normalization default: got %q, want minmax", opts.NormalizationName)
	}
	if opts.Opacity != 0.5 {
		t.Errorf("opacity default: got %v, want 0.5", opts.Opacity)
	}
	if opts.Demo || opts.Legend {
		t.Error("demo and legend should default to off")
	}
}

func TestValidate_ResolvesTokens(t *testing.T) {
	opts := &Options{
		OutputPath:        "out.png",
		ColormapName:      "Viridis",
		NormalizationName: "ZSCORE",
		Opacity:           1,
	}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if opts.Colormap != colormap.Viridis {
		t.Errorf("colormap: got %v, want viridis", opts.Colormap)
	}
	if opts.Normalization != heatmap.ZScore {
		t.Errorf("normalization: got %v, want zscore", opts.Normalization)
	}
}

func TestValidate_Rejections(t *testing.T) {
	valid := func() *Options {
		return &Options{
			OutputPath:        "out.png",
			ColormapName:      "jet",
			NormalizationName: "minmax",
			Opacity:           0.5,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"opacity above range", func(o *Options) { o.Opacity = 1.5 }},
		{"opacity below range", func(o *Options) { o.Opacity = -0.1 }},
		{"unknown colormap", func(o *Options) { o.ColormapName = "rainbow" }},
		{"unknown normalization", func(o *Options) { o.NormalizationName = "robust" }},
		{"missing output", func(o *Options) { o.OutputPath = "" }},
		{"negative smooth", func(o *Options) { o.Smooth = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.mutate(opts)
			if err := opts.Validate(); !errors.Is(err, ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestValidate_OpacityEndpointsAllowed(t *testing.T) {
	for _, opacity := range []float64{0, 1} {
		opts := &Options{
			OutputPath:        "out.png",
			ColormapName:      "red",
			NormalizationName: "minmax",
			Opacity:           opacity,
		}
		if err := opts.Validate(); err != nil {
			t.Errorf("opacity %v should be valid: %v", opacity, err)
		}
	}
}
