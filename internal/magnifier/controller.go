// Package magnifier overlays a 1:1 crop of a full-resolution source image
// onto a downscaled display image around the pointer, and restores the
// display exactly when the overlay ends.
//
// All methods run on the goroutine that dispatches input events; a
// Controller is not safe for concurrent use.
package magnifier

import (
	"fmt"
	"image"
	"math"

	"rgb-magnifier/internal/pixbuf"
)

// Controller owns the display buffer and is its only writer.
type Controller struct {
	source  *pixbuf.Buffer // full resolution, read-only
	display *pixbuf.Buffer
	backup  *pixbuf.Buffer // display as it was before any overlay
	scale   float64
	window  int
	active  bool
}

// New takes ownership of display and snapshots it as the restore backup.
// source is only read. window is the overlay side length in display pixels.
func New(source, display *pixbuf.Buffer, scale float64, window int) (*Controller, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("magnifier: scale %v must be positive", scale)
	}
	if window <= 0 {
		return nil, fmt.Errorf("magnifier: window size %d must be positive", window)
	}
	if source == nil || display == nil {
		return nil, fmt.Errorf("magnifier: nil buffer")
	}
	return &Controller{
		source:  source,
		display: display,
		backup:  display.Clone(),
		scale:   scale,
		window:  window,
	}, nil
}

// Active reports whether an overlay is currently drawn.
func (c *Controller) Active() bool { return c.active }

// WindowSize returns the overlay side length.
func (c *Controller) WindowSize() int { return c.window }

// Display returns the live display buffer. Callers must treat it as
// read-only and only read it between calls into the Controller.
func (c *Controller) Display() *pixbuf.Buffer { return c.display }

// Snapshot returns a private copy of the display buffer.
func (c *Controller) Snapshot() *pixbuf.Buffer { return c.display.Clone() }

// Handle applies one event and reports whether the display changed
// (or needs repainting).
func (c *Controller) Handle(ev Event) bool {
	switch e := ev.(type) {
	case PointerMove:
		if !e.ModifierHeld {
			// A move without the modifier ends the overlay like a key release.
			if c.active {
				c.Restore()
				return true
			}
			return false
		}
		if c.active {
			c.Restore()
		}
		c.Apply(e.X, e.Y)
		return true
	case KeyReleased:
		if e.Key == KeyModifier && c.active {
			c.Restore()
			return true
		}
		return false
	case Expose:
		return true
	}
	return false
}

// Window returns the display-space overlay rectangle for pointer (x, y),
// clamped to the display bounds. It may be empty.
func (c *Controller) Window(x, y int) image.Rectangle {
	h := c.window / 2
	r := image.Rect(x-h, y-h, x+h, y+h)
	return r.Intersect(c.display.Bounds())
}

// Apply copies source pixels into the overlay window around pointer (x, y).
// The pointer maps to source origin floor(p/scale); offsets from the
// pointer are carried over unscaled. Source reads are clamped to the
// source bounds.
func (c *Controller) Apply(x, y int) {
	win := c.Window(x, y)
	c.active = true
	if win.Empty() {
		return
	}

	ox := int(math.Floor(float64(x) / c.scale))
	oy := int(math.Floor(float64(y) / c.scale))
	sw, sh := c.source.Width, c.source.Height

	for dy := win.Min.Y; dy < win.Max.Y; dy++ {
		sy := clamp(oy+dy-y, sh-1)
		srow := c.source.PixOffset(0, sy)
		o := c.display.PixOffset(win.Min.X, dy)
		for dx := win.Min.X; dx < win.Max.X; dx++ {
			i := srow + clamp(ox+dx-x, sw-1)*pixbuf.Channels
			copy(c.display.Pix[o:o+pixbuf.Channels], c.source.Pix[i:i+pixbuf.Channels])
			o += pixbuf.Channels
		}
	}
}

// Restore copies the backup over the display and clears the overlay.
// Calling it repeatedly is harmless.
func (c *Controller) Restore() {
	copy(c.display.Pix, c.backup.Pix)
	c.active = false
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
