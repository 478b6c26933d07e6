package filter

import (
	"testing"

	"rgb-magnifier/internal/pixbuf"
)

func uniform(t *testing.T, w, h int, c uint8) *pixbuf.Buffer {
	t.Helper()
	buf, err := pixbuf.New(w, h)
	if err != nil {
		t.Fatalf("pixbuf.New: %v", err)
	}
	for i := range buf.Pix {
		buf.Pix[i] = c
	}
	return buf
}

func TestBoxSmoothUniformInterior(t *testing.T) {
	src := uniform(t, 9, 7, 200)
	out := BoxSmooth(src)

	if out.Width != src.Width || out.Height != src.Height {
		t.Fatalf("dimensions changed: %dx%d", out.Width, out.Height)
	}
	for y := Radius; y < src.Height-Radius; y++ {
		for x := Radius; x < src.Width-Radius; x++ {
			if r, g, b := out.At(x, y); r != 200 || g != 200 || b != 200 {
				t.Fatalf("interior (%d,%d)=(%d,%d,%d), want 200", x, y, r, g, b)
			}
		}
	}
}

func TestBoxSmoothDarkensBorder(t *testing.T) {
	src := uniform(t, 9, 7, 200)
	out := BoxSmooth(src)

	for _, tc := range []struct {
		name string
		x, y int
		want uint8
	}{
		{name: "corner", x: 0, y: 0, want: 200 * 9 / 25},
		{name: "edge", x: 4, y: 0, want: 200 * 15 / 25},
		{name: "near_corner", x: 1, y: 1, want: 200 * 16 / 25},
		{name: "far_corner", x: 8, y: 6, want: 200 * 9 / 25},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if r, _, _ := out.At(tc.x, tc.y); r != tc.want {
				t.Errorf("(%d,%d)=%d, want %d", tc.x, tc.y, r, tc.want)
			}
		})
	}
}

func TestBoxSmoothNormalizedKeepsUniform(t *testing.T) {
	src := uniform(t, 6, 5, 77)
	out := BoxSmoothNormalized(src)
	if !out.Equal(src) {
		t.Error("normalized smoothing changed a uniform image")
	}
}

func TestBoxSmoothTruncates(t *testing.T) {
	src := uniform(t, 5, 5, 0)
	// Single bright pixel at the centre: 255/25 = 10.2 truncates to 10.
	src.Set(2, 2, 255, 24, 26)
	out := BoxSmooth(src)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if r, g, b := out.At(x, y); r != 10 || g != 0 || b != 1 {
				t.Fatalf("(%d,%d)=(%d,%d,%d), want (10,0,1)", x, y, r, g, b)
			}
		}
	}
	if r, _, _ := src.At(2, 2); r != 255 {
		t.Error("BoxSmooth mutated its input")
	}
}
