package pixbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Channels is the number of bytes per pixel (R, G, B).
const Channels = 3

// ErrDimensions reports a non-positive or overflowing width/height.
var ErrDimensions = errors.New("pixbuf: invalid dimensions")

// Buffer holds an RGB image as one flat slice for cache locality.
// Pixels are interleaved R,G,B bytes in row-major order without padding.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width*Height*3
}

// New allocates a zeroed buffer of w×h pixels.
func New(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, w, h)
	}
	if w > math.MaxInt/Channels/h {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrDimensions, w, h)
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*Channels),
	}, nil
}

// Bounds returns the pixel rectangle covered by the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// PixOffset returns the index of the R byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * Channels
}

// At returns the channel values of pixel (x, y).
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := b.PixOffset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set writes the channel values of pixel (x, y).
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := b.PixOffset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// Clone returns a deep copy that shares no memory with b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// CopyFrom overwrites b with the pixels of src. Both must have equal dimensions.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if b.Width != src.Width || b.Height != src.Height {
		return fmt.Errorf("pixbuf: copy %dx%d into %dx%d: %w",
			src.Width, src.Height, b.Width, b.Height, ErrDimensions)
	}
	copy(b.Pix, src.Pix)
	return nil
}

// Equal reports whether b and o have identical dimensions and bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.Width == o.Width && b.Height == o.Height && bytes.Equal(b.Pix, o.Pix)
}

// ToNRGBA converts the buffer to an opaque NRGBA image.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	n := b.Width * b.Height
	for i := 0; i < n; i++ {
		si := i * Channels
		di := i * 4
		img.Pix[di] = b.Pix[si]
		img.Pix[di+1] = b.Pix[si+1]
		img.Pix[di+2] = b.Pix[si+2]
		img.Pix[di+3] = 255
	}
	return img
}

// FromImage converts any image to a Buffer. Alpha is discarded.
func FromImage(src image.Image) (*Buffer, error) {
	sb := src.Bounds()
	buf, err := New(sb.Dx(), sb.Dy())
	if err != nil {
		return nil, err
	}

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(buf.Bounds())
		draw.Draw(rgba, rgba.Bounds(), src, sb.Min, draw.Src)
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			si := rgba.PixOffset(x, y)
			buf.Set(x, y, rgba.Pix[si], rgba.Pix[si+1], rgba.Pix[si+2])
		}
	}
	return buf, nil
}
