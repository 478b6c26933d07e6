// Package planar reads and writes raw planar RGB images: three
// contiguous planes of width*height bytes (all R, then all G, then all B)
// with no header. Dimensions are always supplied by the caller.
package planar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"rgb-magnifier/internal/pixbuf"
)

// ErrShortRead reports a stream that ended before all three planes were read.
var ErrShortRead = errors.New("planar: short read")

// Decode reads three planes of w*h bytes from r and interleaves them.
// Extra trailing bytes are left unread.
func Decode(r io.Reader, w, h int) (*pixbuf.Buffer, error) {
	buf, err := pixbuf.New(w, h)
	if err != nil {
		return nil, err
	}

	n := w * h
	plane := make([]byte, n)
	for c, name := range [pixbuf.Channels]string{"R", "G", "B"} {
		if got, err := io.ReadFull(r, plane); err != nil {
			return nil, fmt.Errorf("%w: plane %s: %d of %d bytes: %w", ErrShortRead, name, got, n, err)
		}
		for i, v := range plane {
			buf.Pix[i*pixbuf.Channels+c] = v
		}
	}
	return buf, nil
}

// Open opens a planar file for reading. Files ending in ".zst" are
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("planar: open %s: %w", path, err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".zst") {
		return f, nil
	}

	zr, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("planar: zstd %s: %w", path, err)
	}
	return &zstdFile{Decoder: zr, f: f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// DecodeFile opens path and decodes a w×h planar image from it.
func DecodeFile(path string, w, h int) (*pixbuf.Buffer, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf, err := Decode(bufio.NewReaderSize(rc, 1<<20), w, h)
	if err != nil {
		return nil, fmt.Errorf("planar: decode %s: %w", path, err)
	}
	return buf, nil
}
