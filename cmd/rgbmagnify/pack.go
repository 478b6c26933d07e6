package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rgb-magnifier/internal/imageio"
	"rgb-magnifier/internal/planar"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Convert a PNG, JPEG, TGA or WebP image into planar RGB",
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringP("input", "i", "", "Input image file")
	packCmd.Flags().StringP("output", "o", "", "Output planar file (.rgb, or .rgb.zst to compress)")
	packCmd.MarkFlagRequired("input")
	packCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	buf, err := imageio.Load(inputPath)
	if err != nil {
		return err
	}
	if err := planar.EncodeFile(outputPath, buf); err != nil {
		return err
	}

	fmt.Printf("Packed %s → %s\n", inputPath, outputPath)
	fmt.Printf("Dimensions: %d x %d (pass --width %d --height %d when reading it)\n",
		buf.Width, buf.Height, buf.Width, buf.Height)
	return nil
}
