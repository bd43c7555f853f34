package boxblur

import (
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across boxblur tests.

// uniformRGBA returns a tight RGBA8888 buffer filled with one color.
func uniformRGBA(w, h int, c [4]byte) Buffer {
	buf := NewBuffer(w, h, FormatRGBA8888)
	for i := 0; i < len(buf.Pix); i += 4 {
		copy(buf.Pix[i:i+4], c[:])
	}
	return buf
}

// randomBuffer returns a tight buffer of random bytes.
func randomBuffer(rng *rand.Rand, w, h int, f Format) Buffer {
	buf := NewBuffer(w, h, f)
	for i := range buf.Pix {
		buf.Pix[i] = byte(rng.UintN(256))
	}
	return buf
}

// clone returns a deep copy of buf.
func clone(buf Buffer) Buffer {
	out := buf
	out.Pix = append([]byte(nil), buf.Pix...)
	return out
}

// pixelAt returns the RGBA8888 pixel at (x, y).
func pixelAt(buf Buffer, x, y int) [4]byte {
	off := y*buf.Stride + x*4
	return [4]byte(buf.Pix[off : off+4])
}

// assertUnchanged fails if got differs from want anywhere.
func assertUnchanged(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buffer modified)", i, got[i], want[i])
		}
	}
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
