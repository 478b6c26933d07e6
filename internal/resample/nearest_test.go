package resample

import (
	"errors"
	"math"
	"testing"

	"rgb-magnifier/internal/pixbuf"
)

func patterned(t *testing.T, w, h int) *pixbuf.Buffer {
	t.Helper()
	buf, err := pixbuf.New(w, h)
	if err != nil {
		t.Fatalf("pixbuf.New: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, uint8(x), uint8(y), uint8(10*y+x))
		}
	}
	return buf
}

func TestNearestHalf(t *testing.T) {
	src := patterned(t, 4, 4)
	out, err := Nearest(src, 0.5)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("dimensions %dx%d, want 2x2", out.Width, out.Height)
	}
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		r, g, b := out.At(p[0], p[1])
		sr, sg, sb := src.At(2*p[0], 2*p[1])
		if r != sr || g != sg || b != sb {
			t.Errorf("out(%d,%d)=(%d,%d,%d), want src(%d,%d)=(%d,%d,%d)",
				p[0], p[1], r, g, b, 2*p[0], 2*p[1], sr, sg, sb)
		}
	}
}

func TestNearestDimensions(t *testing.T) {
	src := patterned(t, 10, 7)
	for _, tc := range []struct {
		name   string
		scale  float64
		ow, oh int
	}{
		{name: "identity", scale: 1, ow: 10, oh: 7},
		{name: "third", scale: 1.0 / 3, ow: 3, oh: 2},
		{name: "enlarge", scale: 2.5, ow: 25, oh: 17},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Nearest(src, tc.scale)
			if err != nil {
				t.Fatalf("Nearest: %v", err)
			}
			if out.Width != tc.ow || out.Height != tc.oh {
				t.Errorf("dimensions %dx%d, want %dx%d", out.Width, out.Height, tc.ow, tc.oh)
			}
			if len(out.Pix) != tc.ow*tc.oh*pixbuf.Channels {
				t.Errorf("len(Pix)=%d", len(out.Pix))
			}
		})
	}
}

func TestNearestEnlargeLastPixel(t *testing.T) {
	src := patterned(t, 3, 3)
	out, err := Nearest(src, 2.5)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	// floor(6/2.5)=2 is the last source column.
	if r, g, _ := out.At(6, 6); r != 2 || g != 2 {
		t.Errorf("out(6,6)=(%d,%d), want (2,2)", r, g)
	}
}

func TestNearestIdentityCopies(t *testing.T) {
	src := patterned(t, 5, 4)
	out, err := Nearest(src, 1)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if !out.Equal(src) {
		t.Error("scale 1 changed pixels")
	}
	out.Pix[0] = 99
	if src.Pix[0] == 99 {
		t.Error("output aliases input")
	}
}

func TestNearestInvalidScale(t *testing.T) {
	src := patterned(t, 4, 4)
	for _, s := range []float64{0, -1, 0.1, math.NaN()} {
		if _, err := Nearest(src, s); !errors.Is(err, ErrScale) {
			t.Errorf("scale %v: expected ErrScale, got %v", s, err)
		}
	}
}
