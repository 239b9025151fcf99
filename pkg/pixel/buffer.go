// Package pixel holds the in-memory pixel grid that every transform
// operates on, plus the two pure primitives: whole-image reversal and
// keyed XOR. Both primitives are involutions: applying either one twice
// with the same parameters returns the original buffer.
package pixel

// Channels is the number of color channels per pixel. Decoding always
// forces three-channel color, so this never varies at runtime.
const Channels = 3

// Buffer is a row-major H×W grid of three-byte pixels.
// len(Pix) == W*H*Channels always holds for buffers built by New.
type Buffer struct {
	W, H int
	Pix  []uint8
}

// New allocates a zeroed buffer of the given dimensions.
func New(w, h int) *Buffer {
	return &Buffer{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*Channels),
	}
}

// Offset returns the index of pixel (x, y)'s first channel in Pix.
func (b *Buffer) Offset(x, y int) int {
	return (y*b.W + x) * Channels
}

// At returns the three channel values of pixel (x, y).
func (b *Buffer) At(x, y int) (uint8, uint8, uint8) {
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set stores the three channel values of pixel (x, y).
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := b.Offset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// Equal reports whether two buffers have the same dimensions and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.W != other.W || b.H != other.H || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Reverse returns a new buffer with both the row order and the column
// order reversed, i.e. the image rotated 180 degrees. Channel order
// within each pixel is preserved.
func Reverse(b *Buffer) *Buffer {
	out := New(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			src := b.Offset(x, y)
			dst := out.Offset(b.W-1-x, b.H-1-y)
			copy(out.Pix[dst:dst+Channels], b.Pix[src:src+Channels])
		}
	}
	return out
}

// XORKey returns a new buffer with every channel byte XORed with key.
// The uint8 element type keeps every value in [0,255]; no clamp is needed.
func XORKey(b *Buffer, key uint8) *Buffer {
	out := &Buffer{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	for i, v := range b.Pix {
		out.Pix[i] = v ^ key
	}
	return out
}
