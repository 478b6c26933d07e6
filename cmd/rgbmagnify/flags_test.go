package main

import (
	"errors"
	"testing"

	"rgb-magnifier/internal/config"
	"rgb-magnifier/internal/pipeline"
)

func TestParsePositional(t *testing.T) {
	f, err := parsePositional([]string{"../../lake-forest.rgb", "0.5", "1", "200"})
	if err != nil {
		t.Fatalf("parsePositional: %v", err)
	}
	if f.ImagePath != "../../lake-forest.rgb" || f.Scale != 0.5 || !f.AntiAlias || f.WindowSize != 200 {
		t.Errorf("parsed %+v", f)
	}

	for _, args := range [][]string{
		{"only-one"},
		{"img.rgb", "half", "1", "200"},
		{"img.rgb", "0.5", "yes", "200"},
		{"img.rgb", "0.5", "0", "big"},
	} {
		if _, err := parsePositional(args); !errors.Is(err, config.ErrInvalid) {
			t.Errorf("%q: expected ErrInvalid, got %v", args, err)
		}
	}
}

func TestPipelineOptions(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  config.Config
		want pipeline.Smoothing
	}{
		{name: "plain", cfg: config.Config{}, want: pipeline.SmoothNone},
		{name: "anti_alias", cfg: config.Config{AntiAlias: true}, want: pipeline.SmoothBox},
		{name: "normalized", cfg: config.Config{AntiAlias: true, NormalizedSmoothing: true}, want: pipeline.SmoothNormalized},
		{name: "normalized_without_anti_alias", cfg: config.Config{NormalizedSmoothing: true}, want: pipeline.SmoothNone},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := pipelineOptions(tc.cfg).Smoothing; got != tc.want {
				t.Errorf("smoothing %v, want %v", got, tc.want)
			}
		})
	}
}
