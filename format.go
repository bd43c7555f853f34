package boxblur

// Format is a packed pixel encoding supported by the blur kernels.
type Format uint8

const (
	// FormatRGBA8888 is 32-bit RGBA, one byte per channel in R, G, B, A order.
	// This is the layout of image.RGBA.
	FormatRGBA8888 Format = iota

	// FormatRGB565 is 16-bit little-endian RGB with 5 bits red in the high
	// bits, 6 bits green and 5 bits blue in the low bits.
	FormatRGB565

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains metadata about a pixel format.
type formatInfo struct {
	name          string
	bytesPerPixel int
	channels      int
}

var formatInfoTable = [formatCount]formatInfo{
	FormatRGBA8888: {name: "RGBA8888", bytesPerPixel: 4, channels: 4},
	FormatRGB565:   {name: "RGB565", bytesPerPixel: 2, channels: 3},
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the encoded size of one pixel, or 0 for an unknown
// format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatInfoTable[f].bytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	if !f.IsValid() {
		return 0
	}
	return formatInfoTable[f].channels
}

// RowBytes returns the tight row size for width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].name
}

// FormatForStride infers the encoding from a row stride: 4*width selects
// RGBA8888 and 2*width selects RGB565. Any other stride reports false.
func FormatForStride(width, stride int) (Format, bool) {
	switch stride {
	case FormatRGBA8888.RowBytes(width):
		return FormatRGBA8888, true
	case FormatRGB565.RowBytes(width):
		return FormatRGB565, true
	default:
		return 0, false
	}
}
