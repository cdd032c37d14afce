package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/medimaging/heatmap-overlay/internal/config"
	"github.com/medimaging/heatmap-overlay/internal/logging"
	"github.com/medimaging/heatmap-overlay/internal/pipeline"
	"github.com/medimaging/heatmap-overlay/internal/registry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("heatmap-overlay %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("heatmap-overlay - composite a heat-intensity layer onto a medical image")
			fmt.Println()
			fmt.Println("Usage: heatmap-overlay -input chest.png -output overlay.png [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -input PATH      base image (PNG, JPEG, GIF, TIFF, BMP)")
			fmt.Println("  -output PATH     output PNG (required)")
			fmt.Println("  -heatmap PATH    heatmap data (.json, .csv, .bin)")
			fmt.Println("  -colormap NAME   red, hot, jet, viridis, plasma (default jet)")
			fmt.Println("  -normalize NAME  minmax, zscore, percentile (default minmax)")
			fmt.Println("  -opacity F       heat layer opacity in [0,1] (default 0.5)")
			fmt.Println("  -smooth F        Gaussian blur radius for the heat layer (default 0)")
			fmt.Println("  -legend          append a colormap legend strip")
			fmt.Println("  -demo            use a synthetic demo base image")
			fmt.Println("  --version, -v    print version information")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  HEATMAP_OVERLAY_LOG_LEVEL=debug    enable debug logging")
			return
		}
	}

	level := zerolog.InfoLevel
	if os.Getenv("HEATMAP_OVERLAY_LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}
	log := logging.WithRequestID(logging.Setup(os.Stderr, level), logging.NewRequestID())
	log.Debug().Str("version", Version).Str("built", BuildTime).Str("commit", GitCommit).
		Msg("starting heatmap-overlay")

	// Compatibility mapping only; the pipeline never reads it.
	reg := registry.Load()
	log.Debug().Int("services", len(reg.Services)).Msg("loaded service registry")

	opts, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := pipeline.New(log).Run(opts); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
