package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rgb-magnifier/internal/batch"
	"rgb-magnifier/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Render display images for many planar RGB files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	addImageFlags(batchCmd)
	batchCmd.Flags().StringP("output", "o", "", "Output directory (default: next to the first input)")
	batchCmd.Flags().StringP("format", "f", "", "Output format: webp, png or tga (default webp)")
	batchCmd.Flags().Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	workers, _ := cmd.Flags().GetInt("workers")

	flags := configFlags(args[0])
	flags.OutputDir = outputDir
	flags.Format = format
	flags.Workers = workers
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	fmt.Printf("Raw RGB batch render → %s\n", cfg.Format)
	fmt.Printf("Images: %d, Workers: %d\n", len(args), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Options:   pipelineOptions(cfg),
		Workers:   cfg.Workers,
		Progress:  os.Stdout,
	}
	results := batch.Run(batchCfg, args)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.Input, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d images failed", len(failed), len(results))
	}
	return nil
}

func configFlags(imagePath string) config.Flags {
	return config.Flags{ImagePath: imagePath}
}
