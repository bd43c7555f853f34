package boxblur

import (
	"errors"
	"fmt"
)

// ErrRejected matches every validation rejection.
// A rejected call never modifies the pixel buffer.
var ErrRejected = errors.New("boxblur: request rejected")

// Reason identifies why a blur request was rejected.
type Reason uint8

const (
	// ReasonDimensions means width or height is not positive.
	ReasonDimensions Reason = iota + 1

	// ReasonRadius means the radius is negative or above MaxRadius.
	ReasonRadius

	// ReasonUnsupportedRadius means shift normalization was requested for a
	// radius that has no shift constant.
	ReasonUnsupportedRadius

	// ReasonWindow means the window diameter 2*radius+1 is not smaller than
	// the width or the height.
	ReasonWindow

	// ReasonTooLarge means width*height exceeds MaxPixels.
	ReasonTooLarge

	// ReasonStride means the stride does not equal the tight row size of a
	// supported format.
	ReasonStride

	// ReasonFormat means the format is unknown.
	ReasonFormat

	// ReasonShortBuffer means the pixel slice is shorter than stride*height.
	ReasonShortBuffer
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonDimensions:
		return "invalid dimensions"
	case ReasonRadius:
		return "radius out of range"
	case ReasonUnsupportedRadius:
		return "radius has no shift constant"
	case ReasonWindow:
		return "window not smaller than image"
	case ReasonTooLarge:
		return "too many pixels"
	case ReasonStride:
		return "stride mismatch"
	case ReasonFormat:
		return "unknown format"
	case ReasonShortBuffer:
		return "buffer too short"
	default:
		return "unknown"
	}
}

// RejectError reports a rejected blur request and the geometry it carried.
type RejectError struct {
	Reason Reason
	Width  int
	Height int
	Stride int
	Radius int
	Format Format
}

// Error implements error.
func (e *RejectError) Error() string {
	return fmt.Sprintf("boxblur: %s (width=%d height=%d stride=%d radius=%d format=%s)",
		e.Reason, e.Width, e.Height, e.Stride, e.Radius, e.Format)
}

// Is reports whether target is ErrRejected.
func (e *RejectError) Is(target error) bool {
	return target == ErrRejected
}

// ReasonOf returns the rejection reason carried by err, or 0 if err is not a
// rejection.
func ReasonOf(err error) Reason {
	var re *RejectError
	if errors.As(err, &re) {
		return re.Reason
	}
	return 0
}
