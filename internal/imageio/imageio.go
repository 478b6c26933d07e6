// Package imageio converts pixel buffers to and from standard image files.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"

	"rgb-magnifier/internal/pixbuf"
)

// ErrFormat reports an output extension with no encoder.
var ErrFormat = errors.New("imageio: unsupported format")

// Formats lists the encodable output formats by extension.
var Formats = []string{"webp", "png", "tga"}

// FormatOf returns the lowercase extension of path without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes buf to w in the named format. WebP output is lossless.
func Encode(w io.Writer, buf *pixbuf.Buffer, format string) error {
	img := buf.ToNRGBA()
	switch format {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	case "tga":
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Save writes buf to path, choosing the encoder from the extension.
func Save(path string, buf *pixbuf.Buffer) error {
	format := FormatOf(path)
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, buf, format); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imageio: write %s: %w", path, err)
	}
	return f.Close()
}

// Decoders maps every loadable extension to its decoder. The decoder is
// chosen by extension because tga registers with an empty magic string
// and would claim every input passed to image.Decode.
var Decoders = map[string]func(io.Reader) (image.Image, error){
	"png":  png.Decode,
	"jpg":  jpeg.Decode,
	"jpeg": jpeg.Decode,
	"tga":  tga.Decode,
	"webp": webp.Decode,
}

// Load decodes a PNG, JPEG, TGA or WebP file into a buffer.
func Load(path string) (*pixbuf.Buffer, error) {
	decode, ok := Decoders[FormatOf(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return pixbuf.FromImage(img)
}
