package transform

import "pixveil/pkg/pixel"

// xorTransform XORs every channel byte with a one-byte key.
// Value-space only: pixel positions are untouched. Key range is
// validated at the CLI boundary before a pipeline is ever built.
type xorTransform struct {
	key uint8
}

func NewXORTransform(key uint8) Transform { return &xorTransform{key: key} }

func (x *xorTransform) Apply(b *pixel.Buffer) (*pixel.Buffer, error) {
	return pixel.XORKey(b, x.key), nil
}

func (x *xorTransform) Reverse(b *pixel.Buffer) (*pixel.Buffer, error) {
	return pixel.XORKey(b, x.key), nil
}
