package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/rawpix"
)

// rawMagic starts every rawpix raw file.
const rawMagic = "RAWPIX01"

// rawHeaderSize is the magic plus big-endian uint32 width and height.
const rawHeaderSize = len(rawMagic) + 8

// Limits on the allocation a raw header can request. Each side is bounded
// on its own so a zero in one dimension cannot hide a huge other one.
const (
	maxRawPixels = 1 << 28
	maxRawSide   = 1 << 16
)

// ErrBadRawHeader is returned when raw data does not start with a valid
// rawpix header.
var ErrBadRawHeader = errors.New("codec: bad raw header")

func init() {
	image.RegisterFormat(FormatRaw.String(), rawMagic, decodeRawImage, decodeRawConfig)
}

// EncodeRaw writes g to w in the rawpix raw format: the magic, width and
// height, then a zstd frame holding the pixels as packed R, G, B bytes in
// row-major order. Unlike the image formats, zero-sized grids are allowed.
func EncodeRaw(w io.Writer, g rawpix.Grid) error {
	if err := rawpix.Validate(g); err != nil {
		return err
	}

	var hdr [rawHeaderSize]byte
	copy(hdr[:], rawMagic)
	binary.BigEndian.PutUint32(hdr[len(rawMagic):], uint32(g.Width()))
	binary.BigEndian.PutUint32(hdr[len(rawMagic)+4:], uint32(g.Height()))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("codec: write raw header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("codec: raw encoder: %w", err)
	}

	row := make([]byte, g.Width()*3)
	for _, pixels := range g {
		for x, p := range pixels {
			copy(row[x*3:], p[:])
		}
		if _, err := enc.Write(row); err != nil {
			_ = enc.Close()
			return fmt.Errorf("codec: write raw pixels: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("codec: flush raw pixels: %w", err)
	}
	return nil
}

// DecodeRaw reads a grid written by EncodeRaw.
func DecodeRaw(r io.Reader) (rawpix.Grid, error) {
	br := bufio.NewReader(r)
	width, height, err := readRawHeader(br)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("codec: raw decoder: %w", err)
	}
	defer dec.Close()

	g := rawpix.NewGrid(width, height)
	if width == 0 || height == 0 {
		return g, nil
	}
	row := make([]byte, width*3)
	for y := range height {
		if _, err := io.ReadFull(dec, row); err != nil {
			return nil, fmt.Errorf("codec: read raw row %d: %w", y, err)
		}
		for x := range width {
			g[y][x] = rawpix.Pixel{row[x*3], row[x*3+1], row[x*3+2]}
		}
	}
	return g, nil
}

func readRawHeader(r io.Reader) (width, height int, err error) {
	var hdr [rawHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrBadRawHeader, err)
	}
	if string(hdr[:len(rawMagic)]) != rawMagic {
		return 0, 0, fmt.Errorf("%w: wrong magic", ErrBadRawHeader)
	}

	w := binary.BigEndian.Uint32(hdr[len(rawMagic):])
	h := binary.BigEndian.Uint32(hdr[len(rawMagic)+4:])
	if w > maxRawSide || h > maxRawSide {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds side limit", ErrBadRawHeader, w, h)
	}
	if uint64(w)*uint64(h) > maxRawPixels {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds pixel limit", ErrBadRawHeader, w, h)
	}
	return int(w), int(h), nil
}

// decodeRawImage adapts DecodeRaw to image.Decode.
func decodeRawImage(r io.Reader) (image.Image, error) {
	g, err := DecodeRaw(r)
	if err != nil {
		return nil, err
	}
	return toNRGBA(g), nil
}

// decodeRawConfig adapts the raw header to image.DecodeConfig.
func decodeRawConfig(r io.Reader) (image.Config, error) {
	width, height, err := readRawHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}
