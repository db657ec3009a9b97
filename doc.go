// Package rawpix provides simple pixel transforms over in-memory RGB grids.
//
// # Overview
//
// A [Grid] is a row-major slice of rows, each row a slice of [Pixel] values
// holding 8-bit red, green and blue channels. Five transforms operate on
// grids:
//
//   - [Mirror] reverses every row (in place)
//   - [Grey] averages the channels of every pixel (in place)
//   - [Invert] swaps the largest and smallest channel of every pixel (in place)
//   - [Merge] interleaves two grids row by row into a new grid
//   - [Compress] halves both dimensions by 2x2 block averaging into a new grid
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/rawpix"
//	    "github.com/gogpu/rawpix/codec"
//	)
//
//	g, err := codec.Load("tree.png")
//	if err != nil {
//	    return err
//	}
//	rawpix.Mirror(g)
//	small, err := rawpix.Compress(g)
//	if err != nil {
//	    return err
//	}
//	err = codec.Save("tree-small.png", small)
//
// # Grid Shape
//
// Grids are expected to be rectangular. Merge and Compress check the shape
// with [Validate] and return [ErrInvalidGridShape] for ragged input. The
// in-place transforms work row by row and accept any shape.
//
// # Logging
//
// rawpix is silent by default. Use [SetLogger] to receive debug records
// describing grid dimensions.
package rawpix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
