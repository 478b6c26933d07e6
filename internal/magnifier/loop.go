package magnifier

import (
	"context"
	"errors"
	"fmt"
	"io"

	"rgb-magnifier/internal/pixbuf"
)

// Renderer puts a display buffer on screen. The buffer is only valid for
// reading during the call.
type Renderer interface {
	Repaint(display *pixbuf.Buffer) error
}

// InputSource yields input events. Next returns io.EOF when input ends.
type InputSource interface {
	Next(ctx context.Context) (Event, error)
}

// Run paints the initial display, then feeds events from in to c and
// repaints after every change. It returns nil when in reports io.EOF.
func Run(ctx context.Context, in InputSource, c *Controller, r Renderer) error {
	if err := r.Repaint(c.Display()); err != nil {
		return fmt.Errorf("magnifier: repaint: %w", err)
	}
	for {
		ev, err := in.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("magnifier: next event: %w", err)
		}
		if !c.Handle(ev) {
			continue
		}
		if err := r.Repaint(c.Display()); err != nil {
			return fmt.Errorf("magnifier: repaint: %w", err)
		}
	}
}
