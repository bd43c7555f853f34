// Package kernel implements the separable sliding-window blur over packed
// channel lanes.
//
// Each axis is swept with a second-difference recurrence: a slope
// accumulator tracks how the windowed sum changes from one position to the
// next, so every output costs a constant number of lane operations
// regardless of radius. The recurrence produces a triangular window in which
// the sample at distance d from the center has weight radius+1-|d|. The
// weights total (radius+1)^2 at every position because out-of-range samples
// are replaced by the nearest edge sample rather than dropped.
//
// The package does no validation. Callers must guarantee
//
//	0 <= radius <= MaxRadius
//	2*radius+1 < width and 2*radius+1 < height
//	len(pix) >= stride*height and stride >= width*BytesPerPixel
//
// which also keeps every per-channel sum below 2^16.
package kernel

import "github.com/gogpu/boxblur/internal/lane"

// MaxRadius is the largest radius for which 255*(radius+1)^2 fits in one
// lane field.
const MaxRadius = 15

// Normalizer turns a windowed lane sum into per-channel averages.
type Normalizer interface {
	Normalize(sum lane.Lane) lane.Lane
}

// Shift normalizes by a right shift and Mask8. It is exact when
// 1<<Shift equals the window weight.
type Shift uint

// Normalize implements Normalizer.
func (s Shift) Normalize(sum lane.Lane) lane.Lane {
	return sum.Shift(uint(s))
}

// Divisor normalizes by per-channel integer division.
type Divisor uint64

// Normalize implements Normalizer.
func (d Divisor) Normalize(sum lane.Lane) lane.Lane {
	return sum.Div(uint64(d))
}

// shiftTable maps the radii supported by shift normalization to their shift.
// In each case 1<<shift == (radius+1)^2.
var shiftTable = map[int]Shift{
	1:  2,
	3:  4,
	7:  6,
	15: 8,
}

// ShiftFor returns the shift normalizer for radius, if one exists.
func ShiftFor(radius int) (Shift, bool) {
	s, ok := shiftTable[radius]
	return s, ok
}

// Weight returns the total window weight for radius.
func Weight(radius int) int {
	r1 := radius + 1
	return r1 * r1
}

// DivisorFor returns the exact normalizer for radius.
func DivisorFor(radius int) Divisor {
	return Divisor(Weight(radius)) // #nosec G115 -- radius is validated by the caller
}

// Run blurs pix in place. The scratch slice is allocated here and dropped
// on return.
func Run[C lane.Codec, N Normalizer](c C, norm N, pix []byte, width, height, stride, radius int) {
	scratch := make([]lane.Lane, width*height)
	Horizontal(c, norm, pix, scratch, width, height, stride, radius)
	Vertical(c, norm, scratch, pix, width, height, stride, radius)
}

// window holds the running state of one row or column.
type window struct {
	sum   lane.Lane
	slope lane.Lane
}

// start initializes the window for position 0 of a line.
// at returns the sample at index i, for 0 <= i <= radius.
func start(at func(i int) lane.Lane, radius int) window {
	r1 := radius + 1
	first := at(0)
	w := window{
		sum:   first.Scale(r1 * (r1 + 1) / 2),
		slope: first.Scale(-radius),
	}
	for i := 1; i <= radius; i++ {
		cur := at(i)
		w.sum += cur.Scale(r1 - i)
		w.slope += cur
	}
	return w
}

// step advances the window from position x to x+1.
func (w *window) step(in, mid, out lane.Lane) {
	w.slope += in - mid.Scale(2) + out
	w.sum += w.slope
}

// taps returns the clamped sample indices that update the window after
// position x on a line of n samples.
func taps(x, radius, n int) (in, mid, out int) {
	r1 := radius + 1
	return clamp(x-r1, n), x, clamp(x+r1, n)
}

// clamp limits i to [0, n-1], replicating edge samples.
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
