// Package imgio adapts on-disk image files to pixel buffers. The core
// only sees the Codec capability pair, so the underlying image library
// can be swapped without touching any transform logic.
package imgio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// webp inputs decode through the stdlib registry; imaging covers
	// png, jpeg, gif, tiff and bmp itself.
	_ "golang.org/x/image/webp"

	"pixveil/pkg/pixel"
)

var (
	// ErrDecode wraps any failure to read or interpret the input image.
	ErrDecode = errors.New("image decode failed")
	// ErrEncode wraps any failure to write the output image.
	ErrEncode = errors.New("image encode failed")
)

// Codec is the decode/encode capability pair the orchestrator depends on.
type Codec interface {
	Decode(path string) (*pixel.Buffer, error)
	Encode(b *pixel.Buffer, path string) error
}

type imagingCodec struct{}

// NewCodec returns the imaging-backed Codec.
func NewCodec() Codec { return &imagingCodec{} }

// Decode opens path as an image and returns its pixels forced to
// three-channel color. Grayscale and alpha inputs are converted.
func (c *imagingCodec) Decode(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecode, path, err)
	}
	return FromImage(img), nil
}

// Encode writes the buffer to path, inferring the format from the
// extension. The file is written next to its destination and renamed
// into place so a failed encode never leaves a partial output.
func (c *imagingCodec) Encode(b *pixel.Buffer, path string) error {
	ext := filepath.Ext(path)
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrEncode, ext, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pixveil-*"+ext)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, ToImage(b), format); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %v", ErrEncode, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %v", ErrEncode, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %v", ErrEncode, path, err)
	}
	return nil
}

// FromImage flattens any image.Image into a three-channel buffer.
func FromImage(img image.Image) *pixel.Buffer {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	b := pixel.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := nrgba.PixOffset(x, y)
			dst := b.Offset(x, y)
			// drop alpha
			copy(b.Pix[dst:dst+pixel.Channels], nrgba.Pix[src:src+pixel.Channels])
		}
	}
	return b
}

// ToImage expands a buffer back into an opaque NRGBA image.
func ToImage(b *pixel.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			src := b.Offset(x, y)
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+pixel.Channels], b.Pix[src:src+pixel.Channels])
			img.Pix[dst+3] = 0xFF
		}
	}
	return img
}
