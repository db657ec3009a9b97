package rawpix

import (
	"errors"
	"fmt"
)

// ErrInvalidGridShape is returned when the rows of a grid do not all have
// the same length.
var ErrInvalidGridShape = errors.New("rawpix: invalid grid shape")

// Pixel is a single RGB pixel with 8-bit channels in R, G, B order.
type Pixel [3]uint8

// Channel indices into a Pixel.
const (
	R = 0
	G = 1
	B = 2
)

// White is the pixel Merge uses for cells covered by neither input.
var White = Pixel{255, 255, 255}

// Grid is a row-major grid of pixels. Grid[y][x] is the pixel in row y,
// column x. A well-formed grid is rectangular: every row has the length
// of row 0.
type Grid [][]Pixel

// NewGrid allocates a zeroed (black) grid with the given dimensions.
// Non-positive dimensions produce an empty grid.
func NewGrid(width, height int) Grid {
	if width < 0 {
		width = 0
	}
	if height <= 0 {
		return Grid{}
	}

	// One backing array keeps rows contiguous.
	backing := make([]Pixel, width*height)
	g := make(Grid, height)
	for y := range g {
		g[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of row 0, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsEmpty reports whether the grid has no rows.
func (g Grid) IsEmpty() bool {
	return len(g) == 0
}

// Clone returns a deep copy of g. The copy shares no storage with g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = make([]Pixel, len(row))
		copy(out[y], row)
	}
	return out
}

// Equal reports whether g and other have the same shape and pixels.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Validate returns an error wrapping ErrInvalidGridShape if any row length
// differs from the length of row 0. An empty grid is valid.
func Validate(g Grid) error {
	width := g.Width()
	for y, row := range g {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d pixels, row 0 has %d", ErrInvalidGridShape, y, len(row), width)
		}
	}
	return nil
}
