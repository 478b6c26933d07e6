package pipeline

import (
	"fmt"

	"rgb-magnifier/internal/filter"
	"rgb-magnifier/internal/magnifier"
	"rgb-magnifier/internal/pixbuf"
	"rgb-magnifier/internal/planar"
	"rgb-magnifier/internal/resample"
)

// Smoothing selects the filter run before downscaling.
type Smoothing int

const (
	SmoothNone       Smoothing = iota
	SmoothBox                  // 5×5 box, fixed divisor (darkens borders)
	SmoothNormalized           // 5×5 box, divides by in-bounds neighbours
)

func (s Smoothing) String() string {
	switch s {
	case SmoothBox:
		return "box"
	case SmoothNormalized:
		return "box-normalized"
	default:
		return "none"
	}
}

// Options controls display image preparation.
type Options struct {
	Width      int     // source width in pixels
	Height     int     // source height in pixels
	Scale      float64 // display/source ratio
	Smoothing  Smoothing
	WindowSize int // overlay side length; 0 skips controller creation
}

// Result holds the output of a pipeline run.
type Result struct {
	Source     *pixbuf.Buffer
	Controller *magnifier.Controller // nil when Options.WindowSize is 0
	display    *pixbuf.Buffer        // set only when there is no controller
}

// Display returns the display image. With a controller it is the
// controller's live buffer and must only be read between events.
func (r *Result) Display() *pixbuf.Buffer {
	if r.Controller != nil {
		return r.Controller.Display()
	}
	return r.display
}

// Prepare derives the display image from src: smooth (optional) → downscale.
// src is not modified.
func Prepare(src *pixbuf.Buffer, opts Options) (*pixbuf.Buffer, error) {
	smoothed := src
	switch opts.Smoothing {
	case SmoothBox:
		smoothed = filter.BoxSmooth(src)
	case SmoothNormalized:
		smoothed = filter.BoxSmoothNormalized(src)
	}

	display, err := resample.Nearest(smoothed, opts.Scale)
	if err != nil {
		return nil, fmt.Errorf("downscale: %w", err)
	}
	return display, nil
}

// Run executes the startup pipeline: decode → smooth → downscale → controller.
// The controller snapshots the display before any overlay is drawn.
func Run(path string, opts Options) (*Result, error) {
	src, err := planar.DecodeFile(path, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromSource(src, opts)
}

// FromSource runs every stage after decoding.
func FromSource(src *pixbuf.Buffer, opts Options) (*Result, error) {
	display, err := Prepare(src, opts)
	if err != nil {
		return nil, err
	}

	if opts.WindowSize <= 0 {
		return &Result{Source: src, display: display}, nil
	}
	c, err := magnifier.New(src, display, opts.Scale, opts.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	return &Result{Source: src, Controller: c}, nil
}
