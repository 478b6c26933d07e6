package planar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"rgb-magnifier/internal/pixbuf"
)

// Encode writes buf to w as three planes (R, G, B).
func Encode(w io.Writer, buf *pixbuf.Buffer) error {
	n := buf.Width * buf.Height
	plane := make([]byte, n)
	for c := 0; c < pixbuf.Channels; c++ {
		for i := range plane {
			plane[i] = buf.Pix[i*pixbuf.Channels+c]
		}
		if _, err := w.Write(plane); err != nil {
			return fmt.Errorf("planar: write plane %d: %w", c, err)
		}
	}
	return nil
}

// EncodeZstd writes buf to w as zstd-compressed planes. The encoder is
// closed on every path.
func EncodeZstd(w io.Writer, buf *pixbuf.Buffer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("planar: zstd writer: %w", err)
	}
	closed := false
	defer func() {
		if !closed {
			zw.Close()
		}
	}()

	if err := Encode(zw, buf); err != nil {
		return err
	}
	closed = true
	if err := zw.Close(); err != nil {
		return fmt.Errorf("planar: zstd close: %w", err)
	}
	return nil
}

// EncodeFile writes buf to path, zstd-compressed when path ends in ".zst".
func EncodeFile(path string, buf *pixbuf.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("planar: create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if strings.HasSuffix(strings.ToLower(path), ".zst") {
		err = EncodeZstd(bw, buf)
	} else {
		err = Encode(bw, buf)
	}
	if err != nil {
		return fmt.Errorf("planar: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("planar: flush %s: %w", path, err)
	}
	return f.Close()
}
