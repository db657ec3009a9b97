// Package pipeline applies a sequence of rawpix transforms to one grid.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/rawpix"
)

// Op is a single transform step.
type Op uint8

const (
	OpMirror Op = iota
	OpGrey
	OpInvert
	OpMerge
	OpCompress
)

// Pipeline errors.
var (
	// ErrUnknownOp is returned for an op name that does not exist.
	ErrUnknownOp = errors.New("pipeline: unknown op")

	// ErrMissingMergeInput is returned when a merge step has no second grid.
	ErrMissingMergeInput = errors.New("pipeline: merge requires a second grid")
)

// String returns the op name accepted by ParseOp.
func (op Op) String() string {
	switch op {
	case OpMirror:
		return "mirror"
	case OpGrey:
		return "grey"
	case OpInvert:
		return "invert"
	case OpMerge:
		return "merge"
	case OpCompress:
		return "compress"
	default:
		return "unknown"
	}
}

// ParseOp parses a single op name. "gray" is accepted for "grey".
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mirror":
		return OpMirror, nil
	case "grey", "gray":
		return OpGrey, nil
	case "invert":
		return OpInvert, nil
	case "merge":
		return OpMerge, nil
	case "compress":
		return OpCompress, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
}

// ParseOps parses a comma separated list such as "mirror,grey,compress".
// Empty entries are skipped.
func ParseOps(list string) ([]Op, error) {
	var ops []Op
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		op, err := ParseOp(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Options controls a pipeline run.
type Options struct {
	// MergeWith is the second grid for OpMerge steps. The running grid is
	// the first operand.
	MergeWith rawpix.Grid
}

// Run applies ops to g in order and returns the result.
//
// In-place steps modify the grid they receive, so g itself is changed by
// any leading mirror, grey or invert steps. Callers that need the input
// afterwards should pass a clone.
func Run(g rawpix.Grid, ops []Op, opts Options) (rawpix.Grid, error) {
	log := rawpix.Logger()

	for i, op := range ops {
		var err error
		switch op {
		case OpMirror:
			rawpix.Mirror(g)
		case OpGrey:
			rawpix.Grey(g)
		case OpInvert:
			rawpix.Invert(g)
		case OpMerge:
			if opts.MergeWith.IsEmpty() {
				return nil, fmt.Errorf("step %d: %w", i+1, ErrMissingMergeInput)
			}
			g, err = rawpix.Merge(g, opts.MergeWith)
		case OpCompress:
			g, err = rawpix.Compress(g)
		default:
			return nil, fmt.Errorf("step %d: %w: %d", i+1, ErrUnknownOp, op)
		}
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, op, err)
		}

		log.Debug("pipeline: step done", "step", i+1, "op", op.String(),
			"width", g.Width(), "height", g.Height())
	}
	return g, nil
}
