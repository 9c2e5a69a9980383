package cleaner

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned by New for names it does not recognize.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names a built-in cleaner.
type Strategy string

const (
	StrategyStrip   Strategy = "strip"
	StrategyExtract Strategy = "extract"
	StrategyNoop    Strategy = "noop"
)

// Description returns a one-line summary of the strategy.
func (s Strategy) Description() string {
	switch s {
	case StrategyStrip:
		return "remove metadata, headers, image tags and markup; keep all prose"
	case StrategyExtract:
		return "keep only lines starting with || and re-flow them into paragraphs"
	case StrategyNoop:
		return "pass the script through unchanged"
	default:
		return ""
	}
}

// Strategies returns all built-in strategies in display order.
func Strategies() []Strategy {
	return []Strategy{StrategyExtract, StrategyStrip, StrategyNoop}
}

// New returns the cleaner for the given strategy.
func New(strategy Strategy) (Cleaner, error) {
	switch strategy {
	case StrategyStrip:
		return NewStrip(), nil
	case StrategyExtract:
		return NewExtract(), nil
	case StrategyNoop:
		return NewNoop(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
