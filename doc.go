// Package boxblur provides a fixed-point, in-place blur for packed pixel
// buffers.
//
// # Overview
//
// boxblur blurs RGBA8888 and RGB565 rasters in time proportional to the
// pixel count, independent of the radius. All arithmetic is integer: the
// channels of a pixel are packed into 16-bit fields of one uint64, so a
// single add or subtract updates every channel at once.
//
// # Quick Start
//
//	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
//	// ... draw into img ...
//	if err := boxblur.BlurRGBA(img, 7, boxblur.PrecisionFast); err != nil {
//	    log.Printf("blur skipped: %v", err)
//	}
//
// # Algorithm
//
// The filter is separable. A horizontal sweep writes each row into a scratch
// array of packed lanes, and a vertical sweep reads that array and encodes
// the final pixels back into the caller's buffer. Each sweep maintains a
// windowed sum through a second-difference recurrence, which yields a
// triangular window of total weight (radius+1)^2. Edge samples are
// replicated.
//
// # Precision
//
// Two normalizations are available:
//   - Shift: for radius 1, 3, 7 and 15 the weight is a power of two and the
//     sum is normalized with one shift and mask per lane word.
//   - Exact: each channel is divided by (radius+1)^2. Any radius from 0 to
//     MaxRadius is accepted.
//
// PrecisionFast picks shift normalization whenever the radius allows it.
// The two modes never differ by more than one level per channel.
//
// # Rejections
//
// Requests are validated before any pixel is touched. A rejected request
// leaves the buffer byte-for-byte unchanged and returns a *RejectError whose
// Reason names the failed guard. errors.Is(err, ErrRejected) holds for every
// rejection.
//
// # Concurrency
//
// A blur call shares no state with other calls. Blurring distinct buffers
// from different goroutines is safe; BlurAll does exactly that on a worker
// pool. Blurring the same buffer concurrently is undefined.
package boxblur
