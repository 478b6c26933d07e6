package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rgb-magnifier/internal/config"
	"rgb-magnifier/internal/pipeline"
)

// addImageFlags registers the flags shared by every pipeline command.
func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config.json file")
	cmd.Flags().Int("width", 0, fmt.Sprintf("Source width in pixels (default %d)", config.DefaultWidth))
	cmd.Flags().Int("height", 0, fmt.Sprintf("Source height in pixels (default %d)", config.DefaultHeight))
	cmd.Flags().Float64P("scale", "s", 0, "Display scale factor (default 1.0)")
	cmd.Flags().BoolP("anti-alias", "a", false, "Smooth with a 5x5 box filter before downscaling")
	cmd.Flags().Bool("normalized", false, "Divide smoothing sums by the in-bounds neighbour count")
}

// loadConfig reads --config (if any) and applies the command's flags over it.
func loadConfig(cmd *cobra.Command, extra config.Flags) (config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	scale, _ := cmd.Flags().GetFloat64("scale")
	antiAlias, _ := cmd.Flags().GetBool("anti-alias")
	normalized, _ := cmd.Flags().GetBool("normalized")

	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	extra.Width = width
	extra.Height = height
	if extra.Scale == 0 {
		extra.Scale = scale
	}
	extra.AntiAlias = extra.AntiAlias || antiAlias
	extra.Normalized = normalized
	cfg.Resolve(extra)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// parsePositional reads the IMAGE SCALE ANTIALIAS WINDOW argument form.
func parsePositional(args []string) (config.Flags, error) {
	var f config.Flags
	if len(args) == 0 {
		return f, nil
	}
	if len(args) != 4 {
		return f, fmt.Errorf("%w: expected IMAGE SCALE ANTIALIAS WINDOW, got %d arguments", config.ErrInvalid, len(args))
	}

	scale, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return f, fmt.Errorf("%w: scale %q: %v", config.ErrInvalid, args[1], err)
	}
	antiAlias, err := strconv.Atoi(args[2])
	if err != nil {
		return f, fmt.Errorf("%w: anti-alias %q: %v", config.ErrInvalid, args[2], err)
	}
	window, err := strconv.Atoi(args[3])
	if err != nil {
		return f, fmt.Errorf("%w: window %q: %v", config.ErrInvalid, args[3], err)
	}

	f.ImagePath = args[0]
	f.Scale = scale
	f.AntiAlias = antiAlias == 1
	f.WindowSize = window
	return f, nil
}

func pipelineOptions(cfg config.Config) pipeline.Options {
	smoothing := pipeline.SmoothNone
	if cfg.AntiAlias {
		smoothing = pipeline.SmoothBox
		if cfg.NormalizedSmoothing {
			smoothing = pipeline.SmoothNormalized
		}
	}
	return pipeline.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Scale:      cfg.Scale,
		Smoothing:  smoothing,
		WindowSize: cfg.WindowSize,
	}
}

func describe(opts pipeline.Options) string {
	if opts.Smoothing == pipeline.SmoothNone {
		return "downscaling"
	}
	return fmt.Sprintf("%s smoothing and downscaling", opts.Smoothing)
}
