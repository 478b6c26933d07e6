package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Input     string  `json:"input"`
	Image     string  `json:"image"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Scale     float64 `json:"scale"`
	Smoothing string  `json:"smoothing"`
}

// WriteManifest writes the successful results to path as JSON.
// Image paths are stored relative to the manifest's directory.
func WriteManifest(path string, cfg Config, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Output
		if rel, err := filepath.Rel(dir, r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Input:     r.Input,
			Image:     img,
			Width:     r.Width,
			Height:    r.Height,
			Scale:     cfg.Options.Scale,
			Smoothing: cfg.Options.Smoothing.String(),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
