package rawpix

import "fmt"

// Compress returns a copy of g downsampled by 2 in both directions.
//
// Each output pixel (i, j) averages the 2x2 source block at rows 2i, 2i+1
// and columns 2j, 2j+1, per channel, with truncating integer division.
// Blocks that hang over the right or bottom edge of an odd-sized grid
// average the 2 pixels that exist, and the bottom-right block of a grid
// with odd height and odd width copies its single pixel unchanged.
// The output is ceil(h/2) rows by ceil(w/2) columns.
//
// g is not modified. A ragged grid yields ErrInvalidGridShape.
func Compress(g Grid) (Grid, error) {
	if err := Validate(g); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	srcH, srcW := g.Height(), g.Width()
	dstH, dstW := (srcH+1)/2, (srcW+1)/2

	Logger().Debug("rawpix: compress",
		"in", fmt.Sprintf("%dx%d", srcW, srcH),
		"out", fmt.Sprintf("%dx%d", dstW, dstH))

	out := NewGrid(dstW, dstH)
	for i := range dstH {
		sy := i * 2
		hasBelow := sy+1 < srcH
		for j := range dstW {
			sx := j * 2
			hasRight := sx+1 < srcW

			switch {
			case !hasBelow && !hasRight:
				out[i][j] = g[sy][sx]
			case !hasRight:
				out[i][j] = average(g[sy][sx], g[sy+1][sx])
			case !hasBelow:
				out[i][j] = average(g[sy][sx], g[sy][sx+1])
			default:
				out[i][j] = average(g[sy][sx], g[sy][sx+1], g[sy+1][sx], g[sy+1][sx+1])
			}
		}
	}
	return out, nil
}

// average returns the per-channel truncated mean of ps.
func average(ps ...Pixel) Pixel {
	var sum [3]int
	for _, p := range ps {
		sum[R] += int(p[R])
		sum[G] += int(p[G])
		sum[B] += int(p[B])
	}
	n := len(ps)
	return Pixel{uint8(sum[R] / n), uint8(sum[G] / n), uint8(sum[B] / n)}
}
