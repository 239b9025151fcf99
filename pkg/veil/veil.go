// Package veil orchestrates a single obfuscation run: decode the input
// image, apply the per-mode transform pipeline in the requested
// direction, encode the result and journal the run. The engine only
// depends on the abstract codec pair, never on the image library.
package veil

import (
	"fmt"

	"pixveil/internal/fn"
	"pixveil/pkg/digest"
	"pixveil/pkg/history"
	"pixveil/pkg/imgio"
	"pixveil/pkg/log"
	"pixveil/pkg/pixel"
	"pixveil/pkg/transform"
)

// Operation is the transform direction.
type Operation uint8

const (
	OpEncrypt Operation = iota
	OpDecrypt
)

// ParseOperation maps the CLI spelling to an Operation.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "encrypt":
		return OpEncrypt, nil
	case "decrypt":
		return OpDecrypt, nil
	default:
		return 0, fmt.Errorf("unknown operation %q (want encrypt or decrypt)", s)
	}
}

func (o Operation) String() string {
	return fn.T(o == OpEncrypt, "encrypt", "decrypt")
}

// Past returns the past-tense label used in confirmation messages.
func (o Operation) Past() string {
	return fn.T(o == OpEncrypt, "Encrypted", "Decrypted")
}

// Request describes one fully validated run. Key range and mode are
// checked at the CLI boundary before a Request is ever built.
type Request struct {
	Operation Operation
	Input     string
	Output    string
	Key       uint8
	Mode      transform.Mode
}

// Result reports what a completed run produced.
type Result struct {
	Output string
	Width  int
	Height int
	Digest uint8
}

// Engine ties the codec, the pipeline and the run journal together.
type Engine struct {
	codec imgio.Codec
	hist  *history.Store
}

// NewEngine builds an engine. hist may be nil to disable journaling.
func NewEngine(codec imgio.Codec, hist *history.Store) *Engine {
	return &Engine{codec: codec, hist: hist}
}

// Run performs one decode, one in-memory transform and one encode.
// Journal failures are logged, never returned: a written output file
// is a successful run.
func (e *Engine) Run(req Request) (*Result, error) {
	buf, err := e.codec.Decode(req.Input)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("input", req.Input).
		Int("width", buf.W).
		Int("height", buf.H).
		Msg("decoded input image")

	proc, err := transform.NewProcessor(req.Mode, req.Key)
	if err != nil {
		return nil, err
	}

	var out *pixel.Buffer
	if req.Operation == OpEncrypt {
		out, err = proc.Encrypt(buf)
	} else {
		out, err = proc.Decrypt(buf)
	}
	if err != nil {
		return nil, err
	}

	if err := e.codec.Encode(out, req.Output); err != nil {
		return nil, err
	}

	res := &Result{
		Output: req.Output,
		Width:  out.W,
		Height: out.H,
		Digest: digest.Sum8(out.Pix),
	}
	log.Debug().
		Str("output", res.Output).
		Uint8("digest", res.Digest).
		Msg("encoded output image")

	if e.hist != nil {
		err := e.hist.Record(history.Entry{
			Operation: req.Operation.String(),
			Mode:      req.Mode.String(),
			Input:     req.Input,
			Output:    req.Output,
			Width:     res.Width,
			Height:    res.Height,
			Digest:    res.Digest,
		})
		if err != nil {
			log.Warn().Err(err).Msg("could not journal run")
		}
	}
	return res, nil
}
