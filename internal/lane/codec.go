package lane

// Codec converts between one encoded pixel and its Lane.
//
// Implementations are small value types so that kernels written against the
// Codec constraint are instantiated once per encoding.
type Codec interface {
	RGBA8888 | RGB565

	// BytesPerPixel is the encoded size of one pixel.
	BytesPerPixel() int

	// Decode reads the pixel at the start of px.
	Decode(px []byte) Lane

	// Encode writes l as a pixel at the start of px.
	// Every channel of l must already be in [0, 255].
	Encode(px []byte, l Lane)
}

// RGBA8888 is four bytes per pixel: R, G, B, A.
type RGBA8888 struct{}

// BytesPerPixel returns 4.
func (RGBA8888) BytesPerPixel() int { return 4 }

// Decode zero-extends each byte into its own channel field.
func (RGBA8888) Decode(px []byte) Lane {
	_ = px[3]
	return Lane(px[0]) | Lane(px[1])<<16 | Lane(px[2])<<32 | Lane(px[3])<<48
}

// Encode writes the low byte of each channel field.
func (RGBA8888) Encode(px []byte, l Lane) {
	_ = px[3]
	px[0] = byte(l)
	px[1] = byte(l >> 16)
	px[2] = byte(l >> 32)
	px[3] = byte(l >> 48)
}

// RGB565 is a little-endian 16-bit pixel with 5 bits red (high), 6 bits
// green and 5 bits blue (low).
type RGB565 struct{}

// BytesPerPixel returns 2.
func (RGB565) BytesPerPixel() int { return 2 }

// Decode unpacks the 5/6/5 fields and rescales each to 0..255.
func (RGB565) Decode(px []byte) Lane {
	_ = px[1]
	v := uint64(px[0]) | uint64(px[1])<<8
	r := (v >> 11 & 0x1F) * 255 / 31
	g := (v >> 5 & 0x3F) * 255 / 63
	b := (v & 0x1F) * 255 / 31
	return Lane(r | g<<16 | b<<32)
}

// Encode requantizes channels 0..2 into 5/6/5 fields.
// Channel 3 is ignored.
func (RGB565) Encode(px []byte, l Lane) {
	_ = px[1]
	r := uint16(l>>3) & 0x1F
	g := uint16(l>>18) & 0x3F
	b := uint16(l>>35) & 0x1F
	v := r<<11 | g<<5 | b
	px[0] = byte(v)
	px[1] = byte(v >> 8)
}
