package boxblur

import (
	"github.com/gogpu/boxblur/internal/kernel"
	"github.com/gogpu/boxblur/internal/lane"
)

// MaxRadius is the largest accepted blur radius.
const MaxRadius = kernel.MaxRadius

// MaxPixels is the largest accepted width*height.
const MaxPixels = 1000 * 1000

// Buffer is a caller-owned packed pixel raster. The blur functions mutate
// Pix in place and never retain it past return.
type Buffer struct {
	// Pix holds Height rows of Stride bytes each.
	Pix []byte

	Width  int
	Height int

	// Stride is the number of bytes per row. The kernels accept only tight
	// rows, Stride == Format.RowBytes(Width).
	Stride int

	Format Format
}

// NewBuffer allocates a tightly packed buffer.
func NewBuffer(width, height int, format Format) Buffer {
	stride := format.RowBytes(width)
	return Buffer{
		Pix:    make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// Precision selects how windowed sums are normalized.
type Precision uint8

const (
	// PrecisionFast normalizes with a bit shift when the radius is 1, 3, 7
	// or 15, and falls back to exact division for any other radius.
	PrecisionFast Precision = iota

	// PrecisionExact always normalizes with per-channel integer division.
	PrecisionExact
)

// String returns a string representation of the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionFast:
		return "fast"
	case PrecisionExact:
		return "exact"
	default:
		return "unknown"
	}
}

// mode is the normalization chosen for one call.
type mode uint8

const (
	modeShift mode = iota
	modeExact
)

// Blur blurs a packed buffer in place, inferring the format from the stride:
// 4*width is RGBA8888 and 2*width is RGB565.
//
// On any rejection the buffer is left untouched and a *RejectError is
// returned.
func Blur(pix []byte, width, height, stride, radius int, precision Precision) error {
	format, ok := FormatForStride(width, stride)
	if !ok {
		return reject(ReasonStride, Buffer{Width: width, Height: height, Stride: stride, Format: formatCount}, radius)
	}
	return BlurBuffer(Buffer{
		Pix:    pix,
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}, radius, precision)
}

// BlurBuffer blurs buf in place, choosing shift normalization when
// precision is PrecisionFast and the radius has a shift constant.
func BlurBuffer(buf Buffer, radius int, precision Precision) error {
	m := modeExact
	if precision == PrecisionFast {
		if _, ok := kernel.ShiftFor(radius); ok {
			m = modeShift
		}
	}
	return run(buf, radius, m)
}

// BlurApprox blurs buf in place with shift normalization. Only radii 1, 3,
// 7 and 15 are accepted.
func BlurApprox(buf Buffer, radius int) error {
	return run(buf, radius, modeShift)
}

// BlurExact blurs buf in place with per-channel integer division. Any
// radius in [0, MaxRadius] is accepted.
func BlurExact(buf Buffer, radius int) error {
	return run(buf, radius, modeExact)
}

// Validate reports whether BlurExact would accept buf and radius, without
// touching the pixels.
func Validate(buf Buffer, radius int) error {
	if r := check(buf, radius, modeExact); r != 0 {
		return reject(r, buf, radius)
	}
	return nil
}

// run validates the request and dispatches to the kernel instantiation for
// the buffer's format.
func run(buf Buffer, radius int, m mode) error {
	if r := check(buf, radius, m); r != 0 {
		return reject(r, buf, radius)
	}

	var norm kernel.Normalizer
	if m == modeShift {
		norm, _ = kernel.ShiftFor(radius)
	} else {
		norm = kernel.DivisorFor(radius)
	}

	Logger().Debug("boxblur: blur",
		"width", buf.Width, "height", buf.Height,
		"format", buf.Format, "radius", radius, "mode", m.String())

	switch buf.Format {
	case FormatRGBA8888:
		dispatch(lane.RGBA8888{}, norm, buf, radius)
	case FormatRGB565:
		dispatch(lane.RGB565{}, norm, buf, radius)
	}
	return nil
}

// dispatch instantiates the kernel for a concrete normalizer so the sweep
// loops never call through an interface.
func dispatch[C lane.Codec](c C, norm kernel.Normalizer, buf Buffer, radius int) {
	switch n := norm.(type) {
	case kernel.Shift:
		kernel.Run(c, n, buf.Pix, buf.Width, buf.Height, buf.Stride, radius)
	case kernel.Divisor:
		kernel.Run(c, n, buf.Pix, buf.Width, buf.Height, buf.Stride, radius)
	}
}

// check runs every guard and returns the first failing reason, or 0.
func check(buf Buffer, radius int, m mode) Reason {
	if buf.Width <= 0 || buf.Height <= 0 {
		return ReasonDimensions
	}
	if radius < 0 || radius > MaxRadius {
		return ReasonRadius
	}
	if m == modeShift {
		if _, ok := kernel.ShiftFor(radius); !ok {
			return ReasonUnsupportedRadius
		}
	}
	if !buf.Format.IsValid() {
		return ReasonFormat
	}
	if buf.Stride != buf.Format.RowBytes(buf.Width) {
		return ReasonStride
	}
	if buf.Width > MaxPixels/buf.Height {
		return ReasonTooLarge
	}
	if div := 2*radius + 1; div >= buf.Width || div >= buf.Height {
		return ReasonWindow
	}
	if len(buf.Pix) < buf.Stride*buf.Height {
		return ReasonShortBuffer
	}
	return 0
}

// reject builds the error for a failed guard and logs it.
func reject(r Reason, buf Buffer, radius int) error {
	err := &RejectError{
		Reason: r,
		Width:  buf.Width,
		Height: buf.Height,
		Stride: buf.Stride,
		Radius: radius,
		Format: buf.Format,
	}
	Logger().Debug("boxblur: rejected",
		"reason", r.String(),
		"width", buf.Width, "height", buf.Height,
		"stride", buf.Stride, "radius", radius)
	return err
}

func (m mode) String() string {
	if m == modeShift {
		return "shift"
	}
	return "exact"
}
