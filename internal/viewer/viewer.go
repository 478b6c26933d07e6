// Package viewer shows a magnifier session in a devdraw window
// (plan9port or Plan 9). It implements magnifier.Renderer and
// magnifier.InputSource.
//
// Devdraw reports neither modifier state nor key releases, so mouse
// button 1 stands in for the modifier key: holding it while moving shows
// the overlay and releasing it ends the overlay.
package viewer

import (
	"context"
	"fmt"
	"image"
	"io"

	"9fans.net/go/draw"

	"rgb-magnifier/internal/magnifier"
	"rgb-magnifier/internal/pixbuf"
)

// Del and q close the window.
const (
	keyDel  = 0x7F
	keyQuit = 'q'
)

// Window is a devdraw window holding one RGB image.
type Window struct {
	display *draw.Display
	image   *draw.Image // server-side copy of the display buffer
	mouse   *draw.Mousectl
	kbd     *draw.Keyboardctl
	buttons buttonState
}

// Open creates a window sized for a w×h image.
func Open(label string, w, h int) (*Window, error) {
	errch := make(chan error, 1)
	d, err := draw.Init(errch, "", label, fmt.Sprintf("%dx%d", w, h))
	if err != nil {
		return nil, fmt.Errorf("viewer: init display: %w", err)
	}

	// Interleaved R,G,B bytes are BGR24 in devdraw's little-endian notation.
	img, err := d.AllocImage(image.Rect(0, 0, w, h), draw.BGR24, false, draw.Black)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("viewer: alloc %dx%d image: %w", w, h, err)
	}

	return &Window{
		display: d,
		image:   img,
		mouse:   d.InitMouse(),
		kbd:     d.InitKeyboard(),
	}, nil
}

// Repaint uploads buf and draws it at the window's top-left corner.
func (w *Window) Repaint(buf *pixbuf.Buffer) error {
	if buf.Bounds() != w.image.R {
		return fmt.Errorf("viewer: buffer %v does not match window image %v", buf.Bounds(), w.image.R)
	}
	if _, err := w.image.Load(w.image.R, buf.Pix); err != nil {
		return fmt.Errorf("viewer: load image: %w", err)
	}

	screen := w.display.ScreenImage
	screen.Draw(screen.R, w.display.Black, nil, image.Point{})
	r := w.image.R.Add(screen.R.Min).Intersect(screen.R)
	screen.Draw(r, w.image, nil, image.Point{})
	return w.display.Flush()
}

// Next blocks until the next input event. It returns io.EOF when the
// user quits with q or Del.
func (w *Window) Next(ctx context.Context) (magnifier.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case m := <-w.mouse.C:
			w.mouse.Mouse = m
			return w.buttons.translate(m, w.display.ScreenImage.R.Min), nil
		case <-w.mouse.Resize:
			if err := w.display.Attach(draw.RefNone); err != nil {
				return nil, fmt.Errorf("viewer: reattach: %w", err)
			}
			return magnifier.Expose{}, nil
		case r := <-w.kbd.C:
			if r == keyQuit || r == keyDel {
				return nil, io.EOF
			}
		}
	}
}

// Close releases the window.
func (w *Window) Close() error {
	w.image.Free()
	return w.display.Close()
}

// buttonState turns mouse samples into magnifier events.
type buttonState struct {
	held bool
}

func (s *buttonState) translate(m draw.Mouse, origin image.Point) magnifier.Event {
	held := m.Buttons&1 != 0
	p := m.Point.Sub(origin)
	if s.held && !held {
		s.held = false
		return magnifier.KeyReleased{Key: magnifier.KeyModifier}
	}
	s.held = held
	return magnifier.PointerMove{X: p.X, Y: p.Y, ModifierHeld: held}
}
