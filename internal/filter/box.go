// Package filter implements the 5×5 box smoothing applied before downscaling.
package filter

import "rgb-magnifier/internal/pixbuf"

// Radius is the half-width of the smoothing neighbourhood.
const Radius = 2

// Divisor is the fixed neighbourhood size (5×5) BoxSmooth divides by.
const Divisor = (2*Radius + 1) * (2*Radius + 1)

// BoxSmooth averages every pixel over its 5×5 neighbourhood. Out-of-bounds
// neighbours contribute nothing but the sum is still divided by 25, so
// pixels within two of an edge come out darker than their surroundings.
func BoxSmooth(src *pixbuf.Buffer) *pixbuf.Buffer {
	return smooth(src, false)
}

// BoxSmoothNormalized is BoxSmooth with each sum divided by the number of
// in-bounds neighbours actually summed, which avoids the darkened border.
func BoxSmoothNormalized(src *pixbuf.Buffer) *pixbuf.Buffer {
	return smooth(src, true)
}

func smooth(src *pixbuf.Buffer, normalize bool) *pixbuf.Buffer {
	w, h := src.Width, src.Height
	dst := &pixbuf.Buffer{Width: w, Height: h, Pix: make([]uint8, len(src.Pix))}

	for y := 0; y < h; y++ {
		y0, y1 := max(y-Radius, 0), min(y+Radius, h-1)
		for x := 0; x < w; x++ {
			x0, x1 := max(x-Radius, 0), min(x+Radius, w-1)

			var sumR, sumG, sumB uint32
			for sy := y0; sy <= y1; sy++ {
				i := src.PixOffset(x0, sy)
				for sx := x0; sx <= x1; sx++ {
					sumR += uint32(src.Pix[i])
					sumG += uint32(src.Pix[i+1])
					sumB += uint32(src.Pix[i+2])
					i += pixbuf.Channels
				}
			}

			div := uint32(Divisor)
			if normalize {
				div = uint32((x1 - x0 + 1) * (y1 - y0 + 1))
			}
			o := dst.PixOffset(x, y)
			dst.Pix[o] = uint8(sumR / div)
			dst.Pix[o+1] = uint8(sumG / div)
			dst.Pix[o+2] = uint8(sumB / div)
		}
	}
	return dst
}
