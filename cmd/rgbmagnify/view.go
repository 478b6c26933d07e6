package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"rgb-magnifier/internal/config"
	"rgb-magnifier/internal/magnifier"
	"rgb-magnifier/internal/pipeline"
	"rgb-magnifier/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view [IMAGE SCALE ANTIALIAS WINDOW]",
	Short: "Open the display image and magnify with button 1 held",
	Args: func(cmd *cobra.Command, args []string) error {
		_, err := parsePositional(args)
		return err
	},
	RunE: runView,
}

func init() {
	addImageFlags(viewCmd)
	viewCmd.Flags().StringP("input", "i", "", "Input planar RGB file (.rgb or .rgb.zst)")
	viewCmd.Flags().IntP("window", "w", 0, fmt.Sprintf("Magnifier window size (default %d)", config.DefaultWindowSize))
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	flags, err := parsePositional(args)
	if err != nil {
		return err
	}
	if flags.ImagePath == "" {
		flags.ImagePath, _ = cmd.Flags().GetString("input")
	}
	if flags.WindowSize == 0 {
		flags.WindowSize, _ = cmd.Flags().GetInt("window")
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	if cfg.ImagePath == "" {
		return fmt.Errorf("%w: no input image", config.ErrInvalid)
	}

	opts := pipelineOptions(cfg)
	fmt.Printf("Input:  %s (%dx%d)\n", cfg.ImagePath, cfg.Width, cfg.Height)
	fmt.Printf("Performing %s\n", describe(opts))

	start := time.Now()
	res, err := pipeline.Run(cfg.ImagePath, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Display: %dx%d in %.1fs, window %d\n",
		res.Display().Width, res.Display().Height, time.Since(start).Seconds(), cfg.WindowSize)

	win, err := viewer.Open("Image Display", res.Display().Width, res.Display().Height)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := magnifier.Run(ctx, win, res.Controller, win); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
