// Package pixbuf moves pixels between image.Image values, files and the
// tightly packed byte rasters the blur kernels operate on.
package pixbuf

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ToRGBA returns img as an *image.RGBA whose bounds start at the origin.
// An *image.RGBA that already starts at the origin with a tight stride is
// returned unchanged; anything else is converted into a new image.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && IsTight(rgba) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// IsTight reports whether img has its origin at (0,0) and rows of exactly
// 4*width bytes.
func IsTight(img *image.RGBA) bool {
	return img.Rect.Min == image.Point{} && img.Stride == 4*img.Rect.Dx()
}

// Compact copies the visible pixels of img into a tight RGBA8888 raster.
func Compact(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	row := 4 * w
	pix := make([]byte, row*h)
	for y := range h {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(pix[y*row:(y+1)*row], img.Pix[off:off+row])
	}
	return pix
}

// Expand copies a tight RGBA8888 raster back into the visible pixels of
// img. It is the inverse of Compact.
func Expand(img *image.RGBA, pix []byte) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	row := 4 * w
	for y := range h {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(img.Pix[off:off+row], pix[y*row:(y+1)*row])
	}
}

// PackRGB565 converts img to a tight little-endian RGB565 raster.
// Alpha is dropped; channels are truncated to 5/6/5 bits.
func PackRGB565(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := make([]byte, 2*w*h)
	i := 0
	for y := range h {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		for x := range w {
			r, g, b := uint16(src[x*4]), uint16(src[x*4+1]), uint16(src[x*4+2])
			v := r>>3<<11 | g>>2<<5 | b>>3
			pix[i] = byte(v)
			pix[i+1] = byte(v >> 8)
			i += 2
		}
	}
	return pix
}

// UnpackRGB565 expands a tight RGB565 raster into an opaque *image.RGBA,
// rescaling each field to 0..255.
func UnpackRGB565(pix []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range width * height {
		v := uint32(pix[2*i]) | uint32(pix[2*i+1])<<8
		d := img.Pix[4*i : 4*i+4 : 4*i+4]
		d[0] = byte((v >> 11 & 0x1F) * 255 / 31)
		d[1] = byte((v >> 5 & 0x3F) * 255 / 63)
		d[2] = byte((v & 0x1F) * 255 / 31)
		d[3] = 0xFF
	}
	return img
}
