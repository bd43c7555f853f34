package lane

import "testing"

func TestRGBA8888Decode(t *testing.T) {
	got := RGBA8888{}.Decode([]byte{10, 20, 30, 255})
	want := [Count]uint16{10, 20, 30, 255}
	if got.Channels() != want {
		t.Errorf("Decode = %v, want %v", got.Channels(), want)
	}
}

func TestRGBA8888RoundTrip(t *testing.T) {
	var c RGBA8888
	px := make([]byte, 4)
	for v := range 256 {
		src := []byte{byte(v), byte(255 - v), byte(v / 2), byte(v ^ 0x5A)}
		c.Encode(px, c.Decode(src))
		if string(px) != string(src) {
			t.Fatalf("round trip %v = %v", src, px)
		}
	}
}

func TestRGB565Decode(t *testing.T) {
	tests := []struct {
		name string
		px   []byte
		want [Count]uint16
	}{
		{"black", []byte{0x00, 0x00}, [Count]uint16{0, 0, 0, 0}},
		{"white", []byte{0xFF, 0xFF}, [Count]uint16{255, 255, 255, 0}},
		{"red", []byte{0x00, 0xF8}, [Count]uint16{255, 0, 0, 0}},
		{"green", []byte{0xE0, 0x07}, [Count]uint16{0, 255, 0, 0}},
		{"blue", []byte{0x1F, 0x00}, [Count]uint16{0, 0, 255, 0}},
		{"low bits", []byte{0x21, 0x08}, [Count]uint16{8, 4, 8, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (RGB565{}).Decode(tt.px).Channels(); got != tt.want {
				t.Errorf("Decode(%#v) = %v, want %v", tt.px, got, tt.want)
			}
		})
	}
}

func TestRGB565Encode(t *testing.T) {
	px := make([]byte, 2)
	RGB565{}.Encode(px, Pack(255, 0, 0, 0xFF))
	if px[0] != 0x00 || px[1] != 0xF8 {
		t.Errorf("Encode(red) = %#v, want {0x00, 0xF8}", px)
	}
	RGB565{}.Encode(px, Pack(0, 255, 0, 0))
	if px[0] != 0xE0 || px[1] != 0x07 {
		t.Errorf("Encode(green) = %#v, want {0xE0, 0x07}", px)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	var c RGB565
	px := make([]byte, 2)
	for v := range 1 << 16 {
		src := []byte{byte(v), byte(v >> 8)}
		c.Encode(px, c.Decode(src))
		if px[0] != src[0] || px[1] != src[1] {
			t.Fatalf("round trip %#04x = %#02x%02x", v, px[1], px[0])
		}
	}
}

func TestBytesPerPixel(t *testing.T) {
	if got := (RGBA8888{}).BytesPerPixel(); got != 4 {
		t.Errorf("RGBA8888.BytesPerPixel() = %d, want 4", got)
	}
	if got := (RGB565{}).BytesPerPixel(); got != 2 {
		t.Errorf("RGB565.BytesPerPixel() = %d, want 2", got)
	}
}
