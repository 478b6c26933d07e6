package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"rgb-magnifier/internal/resample"
)

// Default source dimensions of the raw images this tool was built for.
const (
	DefaultWidth      = 7680
	DefaultHeight     = 4320
	DefaultScale      = 1.0
	DefaultWindowSize = 200
	DefaultFormat     = "webp"
)

// ErrInvalid reports a configuration that cannot drive the pipeline.
var ErrInvalid = errors.New("config: invalid")

// Config holds the image source, display and output settings.
type Config struct {
	// Input
	ImagePath string `json:"image_path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`

	// Display settings
	Scale               float64 `json:"scale"`
	AntiAlias           bool    `json:"anti_alias"`
	NormalizedSmoothing bool    `json:"normalized_smoothing"`
	WindowSize          int     `json:"window_size"`

	// Output settings
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ImagePath  string
	Width      int
	Height     int
	Scale      float64
	AntiAlias  bool
	Normalized bool
	WindowSize int
	OutputDir  string
	Format     string
	Workers    int
}

// Resolve applies CLI overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.ImagePath != "" {
		c.ImagePath = flags.ImagePath
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.AntiAlias {
		c.AntiAlias = true
	}
	if flags.Normalized {
		c.NormalizedSmoothing = true
	}
	if flags.WindowSize > 0 {
		c.WindowSize = flags.WindowSize
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.WindowSize == 0 {
		c.WindowSize = DefaultWindowSize
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" && c.ImagePath != "" {
		c.OutputDir = filepath.Dir(c.ImagePath)
	}
}

// Validate checks that the settings describe a non-empty display image.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: source dimensions %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if !(c.Scale > 0) {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.Scale)
	}
	if w, h := resample.ScaledSize(c.Width, c.Height, c.Scale); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: scale %v gives empty %dx%d display", ErrInvalid, c.Scale, w, h)
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window size %d must be positive", ErrInvalid, c.WindowSize)
	}
	return nil
}
