// Package resample resizes pixel buffers by nearest-neighbour lookup.
package resample

import (
	"errors"
	"fmt"

	"rgb-magnifier/internal/pixbuf"
)

// ErrScale reports a non-positive scale factor or one that yields an empty image.
var ErrScale = errors.New("resample: invalid scale")

// ScaledSize returns floor(scale*w) × floor(scale*h).
func ScaledSize(w, h int, scale float64) (int, int) {
	return int(scale * float64(w)), int(scale * float64(h))
}

// Nearest resamples src by scale. Output pixel (x, y) takes source pixel
// (floor(x/scale), floor(y/scale)) clamped into the source bounds.
// The result is freshly allocated.
func Nearest(src *pixbuf.Buffer, scale float64) (*pixbuf.Buffer, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: %v", ErrScale, scale)
	}
	ow, oh := ScaledSize(src.Width, src.Height, scale)
	dst, err := pixbuf.New(ow, oh)
	if err != nil {
		return nil, fmt.Errorf("%w: %v gives %dx%d: %w", ErrScale, scale, ow, oh, err)
	}

	// Column lookup is shared by every row.
	cols := make([]int, ow)
	for x := range cols {
		cols[x] = clamp(int(float64(x)/scale), src.Width-1)
	}

	for y := 0; y < oh; y++ {
		sy := clamp(int(float64(y)/scale), src.Height-1)
		row := src.PixOffset(0, sy)
		o := dst.PixOffset(0, y)
		for _, sx := range cols {
			i := row + sx*pixbuf.Channels
			copy(dst.Pix[o:o+pixbuf.Channels], src.Pix[i:i+pixbuf.Channels])
			o += pixbuf.Channels
		}
	}
	return dst, nil
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
