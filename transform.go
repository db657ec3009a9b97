package rawpix

// Mirror reverses the order of pixels within every row of g, in place.
// Row count and dimensions are unchanged.
func Mirror(g Grid) {
	for _, row := range g {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// Grey replaces every pixel of g with the floor average of its channels,
// in place.
func Grey(g Grid) {
	for _, row := range g {
		for x := range row {
			p := &row[x]
			avg := uint8((int(p[R]) + int(p[G]) + int(p[B])) / 3)
			p[R], p[G], p[B] = avg, avg, avg
		}
	}
}

// Invert swaps the largest and smallest channel values of every pixel of g,
// in place.
//
// The extremes are captured before the pixel changes and channels are
// visited in R, G, B order, each compared against both extremes with the
// maximum checked first. Every channel holding an extreme is swapped, so
// {255, 255, 0} becomes {0, 0, 255}, a uniform pixel is left unchanged and
// the middle channel of three distinct values is never touched.
func Invert(g Grid) {
	for _, row := range g {
		for x := range row {
			invertPixel(&row[x])
		}
	}
}

func invertPixel(p *Pixel) {
	hi := max(p[R], p[G], p[B])
	lo := min(p[R], p[G], p[B])
	for c := range p {
		switch p[c] {
		case hi:
			p[c] = lo
		case lo:
			p[c] = hi
		}
	}
}
