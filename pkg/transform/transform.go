// Package transform composes the reversible pixel operations into
// per-mode pipelines. Encryption applies the pipeline in forward order,
// decryption applies each step's inverse in mirrored order.
package transform

import "pixveil/pkg/pixel"

// Transform is a single reversible step of the pipeline.
// For every step here Apply and Reverse coincide (both primitives are
// involutions), but the pipeline machinery never relies on that.
type Transform interface {
	Apply(b *pixel.Buffer) (*pixel.Buffer, error)
	Reverse(b *pixel.Buffer) (*pixel.Buffer, error)
}

type noOpTransform struct{}

func NewNoOpTransform() Transform { return &noOpTransform{} }

func (n *noOpTransform) Apply(b *pixel.Buffer) (*pixel.Buffer, error)   { return b, nil }
func (n *noOpTransform) Reverse(b *pixel.Buffer) (*pixel.Buffer, error) { return b, nil }
