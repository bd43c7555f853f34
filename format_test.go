package boxblur

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		f        Format
		bpp      int
		channels int
		name     string
	}{
		{FormatRGBA8888, 4, 4, "RGBA8888"},
		{FormatRGB565, 2, 3, "RGB565"},
		{Format(42), 0, 0, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.f.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.f.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.f.RowBytes(10); got != 10*tt.bpp {
				t.Errorf("RowBytes(10) = %d, want %d", got, 10*tt.bpp)
			}
		})
	}
}

func TestFormatForStride(t *testing.T) {
	tests := []struct {
		width, stride int
		want          Format
		ok            bool
	}{
		{100, 400, FormatRGBA8888, true},
		{100, 200, FormatRGB565, true},
		{100, 300, 0, false},
		{100, 404, 0, false},
		{100, 100, 0, false},
	}

	for _, tt := range tests {
		got, ok := FormatForStride(tt.width, tt.stride)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("FormatForStride(%d, %d) = (%v, %v), want (%v, %v)",
				tt.width, tt.stride, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(7, 3, FormatRGB565)
	if buf.Stride != 14 {
		t.Errorf("Stride = %d, want 14", buf.Stride)
	}
	if len(buf.Pix) != 42 {
		t.Errorf("len(Pix) = %d, want 42", len(buf.Pix))
	}
}
