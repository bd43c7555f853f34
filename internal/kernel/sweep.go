package kernel

import "github.com/gogpu/boxblur/internal/lane"

// Horizontal blurs every row of pix into scratch.
// scratch is laid out tightly, width lanes per row.
func Horizontal[C lane.Codec, N Normalizer](c C, norm N, pix []byte, scratch []lane.Lane, width, height, stride, radius int) {
	bpp := c.BytesPerPixel()

	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width*bpp]
		out := scratch[y*width : (y+1)*width]

		at := func(i int) lane.Lane { return c.Decode(row[i*bpp:]) }
		w := start(at, radius)

		for x := 0; x < width; x++ {
			out[x] = norm.Normalize(w.sum)

			in, mid, end := taps(x, radius, width)
			w.step(at(in), at(mid), at(end))
		}
	}
}

// Vertical blurs every column of scratch and encodes the result into pix.
func Vertical[C lane.Codec, N Normalizer](c C, norm N, scratch []lane.Lane, pix []byte, width, height, stride, radius int) {
	bpp := c.BytesPerPixel()

	for x := 0; x < width; x++ {
		at := func(i int) lane.Lane { return scratch[i*width+x] }
		w := start(at, radius)

		off := x * bpp
		for y := 0; y < height; y++ {
			c.Encode(pix[off:], norm.Normalize(w.sum))
			off += stride

			in, mid, end := taps(y, radius, height)
			w.step(at(in), at(mid), at(end))
		}
	}
}
