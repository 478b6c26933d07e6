package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rgb-magnifier/internal/imageio"
	"rgb-magnifier/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the display image of a planar RGB file as WebP, PNG or TGA",
	RunE:  runRender,
}

func init() {
	addImageFlags(renderCmd)
	renderCmd.Flags().StringP("input", "i", "", "Input planar RGB file (.rgb or .rgb.zst)")
	renderCmd.Flags().StringP("output", "o", "", "Output image file (.webp, .png or .tga)")
	renderCmd.MarkFlagRequired("input")
	renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig(cmd, configFlags(inputPath))
	if err != nil {
		return err
	}
	opts := pipelineOptions(cfg)
	opts.WindowSize = 0

	start := time.Now()
	res, err := pipeline.Run(inputPath, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := imageio.Save(outputPath, res.Display()); err != nil {
		return err
	}

	fmt.Printf("Rendered %dx%d → %dx%d (%s) in %.1fs\n",
		res.Source.Width, res.Source.Height, res.Display().Width, res.Display().Height,
		describe(opts), time.Since(start).Seconds())
	fmt.Printf("Output: %s\n", outputPath)
	return nil
}
