package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("pixbuf: unsupported format")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("pixbuf: empty image")
)

// Encoding names an image file format.
type Encoding string

// Encodings with an encoder. WebP is decode-only.
const (
	EncodingPNG  Encoding = "png"
	EncodingJPEG Encoding = "jpeg"
	EncodingGIF  Encoding = "gif"
	EncodingBMP  Encoding = "bmp"
	EncodingTIFF Encoding = "tiff"
)

// EncodingFor returns the encoding implied by the extension of path.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return EncodingPNG, nil
	case ".jpg", ".jpeg":
		return EncodingJPEG, nil
	case ".gif":
		return EncodingGIF, nil
	case ".bmp":
		return EncodingBMP, nil
	case ".tif", ".tiff":
		return EncodingTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads any registered image format and returns it as a tight
// *image.RGBA along with the format name reported by the decoder.
func Decode(r io.Reader) (*image.RGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("pixbuf: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return ToRGBA(img), format, nil
}

// Load opens and decodes the image file at path.
func Load(path string) (*image.RGBA, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("pixbuf: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Encode writes img to w in the given encoding.
func Encode(w io.Writer, img image.Image, enc Encoding) error {
	var err error
	switch enc {
	case EncodingPNG:
		err = png.Encode(w, img)
	case EncodingJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case EncodingGIF:
		err = gif.Encode(w, img, nil)
	case EncodingBMP:
		err = bmp.Encode(w, img)
	case EncodingTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, enc)
	}
	if err != nil {
		return fmt.Errorf("pixbuf: encode %s: %w", enc, err)
	}
	return nil
}

// Save writes img to path, choosing the encoding from the extension.
func Save(path string, img image.Image) error {
	enc, err := EncodingFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixbuf: create file: %w", err)
	}
	if err := Encode(f, img, enc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
