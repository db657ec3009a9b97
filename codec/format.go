// Package codec converts between encoded image files and rawpix grids.
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF, WebP and the rawpix raw
// format; encoding supports all of them except WebP. Alpha is discarded on
// the way in and written as fully opaque on the way out.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an encoded image format.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG is lossy JPEG. Quality is set with WithQuality.
	FormatJPEG

	// FormatGIF is paletted GIF. Encoding quantizes to 256 colors.
	FormatGIF

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF

	// FormatWebP is WebP. Decode only.
	FormatWebP

	// FormatRaw is the lossless rawpix container: a small header followed
	// by zstd-compressed RGB bytes.
	FormatRaw

	// formatCount is the number of formats (for internal use).
	formatCount
)

// ErrUnsupportedFormat is returned when a format name, file extension or
// encode target is not supported.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

var formatNames = [formatCount]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatGIF:  "gif",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatWebP: "webp",
	FormatRaw:  "rawpix",
}

// String returns the lower-case format name, as registered with the
// image package.
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return formatNames[f]
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// CanEncode reports whether grids can be written in this format.
func (f Format) CanEncode() bool {
	return f.IsValid() && f != FormatWebP
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	case FormatRaw:
		return ".rpx"
	default:
		return "." + f.String()
	}
}

// ParseFormat parses a format name such as "png" or "jpg". Matching is
// case-insensitive and a leading dot is ignored.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	case "webp":
		return FormatWebP, nil
	case "rawpix", "rpx", "raw":
		return FormatRaw, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}
