package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
		ok   bool
	}{
		{name: "one_pixel", w: 1, h: 1, ok: true},
		{name: "wide", w: 7, h: 3, ok: true},
		{name: "zero_width", w: 0, h: 3},
		{name: "negative_height", w: 4, h: -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.w, tc.h)
			if !tc.ok {
				if !errors.Is(err, ErrDimensions) {
					t.Fatalf("expected ErrDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if len(b.Pix) != tc.w*tc.h*Channels {
				t.Errorf("len(Pix)=%d, want %d", len(b.Pix), tc.w*tc.h*Channels)
			}
		})
	}
}

func TestSetAtCloneIndependent(t *testing.T) {
	b, err := New(3, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Set(2, 1, 10, 20, 30)
	if r, g, bl := b.At(2, 1); r != 10 || g != 20 || bl != 30 {
		t.Fatalf("At(2,1)=(%d,%d,%d)", r, g, bl)
	}
	if got := b.PixOffset(2, 1); got != 15 {
		t.Errorf("PixOffset(2,1)=%d, want 15", got)
	}

	c := b.Clone()
	c.Set(2, 1, 0, 0, 0)
	if r, _, _ := b.At(2, 1); r != 10 {
		t.Error("Clone shares memory with original")
	}
	if b.Equal(c) {
		t.Error("Equal reported modified clone as equal")
	}
	if err := c.CopyFrom(b); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if diff := cmp.Diff(b.Pix, c.Pix); diff != "" {
		t.Errorf("CopyFrom mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyFromDimensionMismatch(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(3, 2)
	if err := a.CopyFrom(b); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
}

func TestImageConversion(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	for y := 5; y < 7; y++ {
		for x := 5; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: uint8(x + y), A: 255})
		}
	}

	b, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if b.Width != 3 || b.Height != 2 {
		t.Fatalf("dimensions %dx%d, want 3x2", b.Width, b.Height)
	}
	if r, g, bl := b.At(1, 1); r != 60 || g != 60 || bl != 12 {
		t.Errorf("At(1,1)=(%d,%d,%d), want (60,60,12)", r, g, bl)
	}

	out := b.ToNRGBA()
	c := out.NRGBAAt(2, 0)
	if c != (color.NRGBA{R: 70, G: 50, B: 12, A: 255}) {
		t.Errorf("ToNRGBA(2,0)=%v", c)
	}
}
