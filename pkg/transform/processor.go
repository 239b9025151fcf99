package transform

import (
	"fmt"

	"pixveil/pkg/pixel"
)

// Processor applies a fixed pipeline of reversible transforms.
// Encrypt runs the steps 0..N; Decrypt undoes them N..0, so for any
// buffer b, Decrypt(Encrypt(b)) == b as long as every step's Reverse
// inverts its Apply.
type Processor struct {
	transforms []Transform
}

// NewProcessor builds the processor for a (mode, key) pair.
func NewProcessor(mode Mode, key uint8) (*Processor, error) {
	steps := mode.pipeline(key)
	if len(steps) == 0 {
		return nil, fmt.Errorf("no pipeline for %s", mode)
	}
	return &Processor{transforms: steps}, nil
}

// Encrypt applies the pipeline transforms in forward order (0..N).
func (p *Processor) Encrypt(b *pixel.Buffer) (*pixel.Buffer, error) {
	var err error
	current := b
	for i, tr := range p.transforms {
		current, err = tr.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("encrypt: transform %d (%T) Apply failed: %w", i, tr, err)
		}
	}
	return current, nil
}

// Decrypt applies the pipeline transforms in reverse order (N..0).
func (p *Processor) Decrypt(b *pixel.Buffer) (*pixel.Buffer, error) {
	var err error
	current := b
	for i := len(p.transforms) - 1; i >= 0; i-- {
		tr := p.transforms[i]
		current, err = tr.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("decrypt: transform %d (%T) Reverse failed: %w", i, tr, err)
		}
	}
	return current, nil
}
