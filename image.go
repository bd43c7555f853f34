package boxblur

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/boxblur/internal/pixbuf"
)

// BlurRGBA blurs img in place.
//
// A tight image (origin at (0,0), stride 4*width) is blurred directly in its
// Pix slice. Sub-images and padded rows are copied into a tight raster,
// blurred, and copied back; on rejection img is left untouched either way.
func BlurRGBA(img *image.RGBA, radius int, precision Precision) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	if pixbuf.IsTight(img) {
		return Blur(img.Pix, w, h, img.Stride, radius, precision)
	}

	// Pix is attached after the copy, so before that the only acceptable
	// failure is the length check.
	buf := Buffer{Width: w, Height: h, Stride: 4 * w, Format: FormatRGBA8888}
	if r := check(buf, radius, modeExact); r != ReasonShortBuffer {
		return reject(r, buf, radius)
	}
	buf.Pix = pixbuf.Compact(img)
	if err := BlurBuffer(buf, radius, precision); err != nil {
		return err
	}
	pixbuf.Expand(img, buf.Pix)
	return nil
}

// BlurImage converts img to RGBA, blurs the copy, and returns it.
// img itself is never modified.
func BlurImage(img image.Image, radius int, opts ...Option) (*image.RGBA, error) {
	o := applyOptions(opts)

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)

	if err := Blur(dst.Pix, b.Dx(), b.Dy(), dst.Stride, radius, o.precision); err != nil {
		return nil, err
	}
	return dst, nil
}

// PackRGB565 returns a tight RGB565 buffer holding the pixels of img.
func PackRGB565(img *image.RGBA) Buffer {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	return Buffer{
		Pix:    pixbuf.PackRGB565(img),
		Width:  w,
		Height: h,
		Stride: FormatRGB565.RowBytes(w),
		Format: FormatRGB565,
	}
}

// UnpackRGB565 expands an RGB565 buffer into an opaque *image.RGBA.
// Rows are read at buf.Stride, so padded buffers are accepted.
func UnpackRGB565(buf Buffer) *image.RGBA {
	row := FormatRGB565.RowBytes(buf.Width)
	pix := buf.Pix
	if buf.Stride != row {
		pix = make([]byte, row*buf.Height)
		for y := range buf.Height {
			copy(pix[y*row:(y+1)*row], buf.Pix[y*buf.Stride:])
		}
	}
	return pixbuf.UnpackRGB565(pix, buf.Width, buf.Height)
}
