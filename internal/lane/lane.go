// Package lane provides the packed channel representation used by the blur
// kernels.
//
// A Lane stores up to four color channels in disjoint 16-bit fields of a
// single uint64:
//
//	bits  0..15  channel 0 (R)
//	bits 16..31  channel 1 (G)
//	bits 32..47  channel 2 (B)
//	bits 48..63  channel 3 (A, unused for RGB565)
//
// Adding or subtracting whole Lanes adds or subtracts every channel at once.
// The result is correct as long as each true per-channel value stays within
// [0, 65535] after the final operation. Intermediate values may wrap the
// whole word because every update is linear modulo 2^64.
package lane

// Lane is four 16-bit channel fields packed into one word.
type Lane uint64

// Width is the number of bits reserved for each channel.
const Width = 16

// Count is the number of channel fields in a Lane.
const Count = 4

// MaxSum is the largest per-channel value a Lane can hold without one
// channel carrying into its neighbor.
const MaxSum = 1<<Width - 1

// Mask8 keeps the low 8 bits of every channel field.
const Mask8 Lane = 0x00FF00FF00FF00FF

// mask16 keeps one full channel field.
const mask16 = 0xFFFF

// Pack builds a Lane from four channel values.
func Pack(c0, c1, c2, c3 uint16) Lane {
	return Lane(c0) | Lane(c1)<<16 | Lane(c2)<<32 | Lane(c3)<<48
}

// Splat returns a Lane with every channel set to v.
func Splat(v uint16) Lane {
	return Pack(v, v, v, v)
}

// Channel returns the value of channel i (0..3).
func (l Lane) Channel(i int) uint16 {
	return uint16(l >> (uint(i) * Width) & mask16) // #nosec G115 -- masked to 16 bits
}

// Channels unpacks all four channel fields.
func (l Lane) Channels() [Count]uint16 {
	return [Count]uint16{l.Channel(0), l.Channel(1), l.Channel(2), l.Channel(3)}
}

// Scale multiplies every channel by k.
func (l Lane) Scale(k int) Lane {
	return l * Lane(k) // #nosec G115 -- wraparound is intended
}

// Shift divides every channel by 2^n and truncates each result to 8 bits.
// Bits shifted down from a higher channel land in the upper byte of the
// channel below and are cleared by Mask8, so n must not exceed 8.
func (l Lane) Shift(n uint) Lane {
	return (l >> n) & Mask8
}

// Div divides every channel by d independently.
func (l Lane) Div(d uint64) Lane {
	if d == 1 {
		return l
	}
	var out Lane
	for i := range Count {
		s := uint(i) * Width
		out |= Lane((uint64(l>>s)&mask16)/d) << s
	}
	return out
}
