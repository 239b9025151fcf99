package transform

import "pixveil/pkg/pixel"

// flipTransform reverses row and column order (180-degree rotation).
// Index-space only: channel values are untouched.
type flipTransform struct{}

func NewFlipTransform() Transform { return &flipTransform{} }

func (f *flipTransform) Apply(b *pixel.Buffer) (*pixel.Buffer, error) {
	return pixel.Reverse(b), nil
}

func (f *flipTransform) Reverse(b *pixel.Buffer) (*pixel.Buffer, error) {
	return pixel.Reverse(b), nil
}
