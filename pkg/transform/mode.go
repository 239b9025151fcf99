package transform

import "fmt"

// Mode selects which primitive operations the pipeline composes.
type Mode uint8

const (
	// ModeSwap reverses pixel positions only.
	ModeSwap Mode = iota
	// ModeMath XORs channel values only.
	ModeMath
	// ModeBoth XORs first, then reverses (on encrypt).
	ModeBoth
)

// ParseMode maps the CLI spelling to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "swap":
		return ModeSwap, nil
	case "math":
		return ModeMath, nil
	case "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want swap, math or both)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSwap:
		return "swap"
	case ModeMath:
		return "math"
	case ModeBoth:
		return "both"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// pipeline returns the ordered transform list for the mode, computed
// once per processor rather than re-branched on every call.
func (m Mode) pipeline(key uint8) []Transform {
	switch m {
	case ModeSwap:
		return []Transform{NewFlipTransform()}
	case ModeMath:
		return []Transform{NewXORTransform(key)}
	case ModeBoth:
		return []Transform{NewXORTransform(key), NewFlipTransform()}
	default:
		return nil
	}
}
