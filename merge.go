package rawpix

import "fmt"

// Merge combines a and b into a new grid.
//
// If either input is empty, Merge returns a copy of the other. Otherwise the
// result is as tall as the taller input and as wide as the wider one, and
// cell (i, j) is taken from the first matching rule:
//
//  1. White if neither input covers (i, j).
//  2. b[i][j] if only b covers (i, j).
//  3. a[i][j] if only a covers (i, j).
//  4. a[i][j] if row i is even.
//  5. b[i][j] if row i is odd.
//
// Coverage is judged against each input's height and row 0 width, so both
// inputs must be rectangular; a ragged input yields ErrInvalidGridShape.
// Neither input is modified and the result shares no storage with them.
func Merge(a, b Grid) (Grid, error) {
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if err := Validate(a); err != nil {
		return nil, fmt.Errorf("merge: first grid: %w", err)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("merge: second grid: %w", err)
	}

	ah, aw := a.Height(), a.Width()
	bh, bw := b.Height(), b.Width()
	height, width := max(ah, bh), max(aw, bw)

	Logger().Debug("rawpix: merge",
		"a", fmt.Sprintf("%dx%d", aw, ah),
		"b", fmt.Sprintf("%dx%d", bw, bh),
		"out", fmt.Sprintf("%dx%d", width, height))

	out := NewGrid(width, height)
	for i := range height {
		for j := range width {
			inA := i < ah && j < aw
			inB := i < bh && j < bw
			switch {
			case !inA && !inB:
				out[i][j] = White
			case !inA:
				out[i][j] = b[i][j]
			case !inB:
				out[i][j] = a[i][j]
			case i%2 == 0:
				out[i][j] = a[i][j]
			default:
				out[i][j] = b[i][j]
			}
		}
	}
	return out, nil
}
