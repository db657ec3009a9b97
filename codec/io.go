package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/gogpu/rawpix"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("codec: empty data")

	// ErrEmptyGrid is returned when encoding a grid with no pixels.
	ErrEmptyGrid = errors.New("codec: empty grid")

	// ErrInvalidDimensions is returned when a resample target is non-positive.
	ErrInvalidDimensions = errors.New("codec: invalid dimensions")
)

// Info describes an encoded image without decoding its pixels.
type Info struct {
	Width  int
	Height int
	Format Format
}

// Load reads and decodes the image at path, auto-detecting the format.
func Load(path string) (rawpix.Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	g, err := Decode(f)
	if err != nil {
		return nil, err
	}
	rawpix.Logger().Debug("codec: loaded", "path", path, "width", g.Width(), "height", g.Height())
	return g, nil
}

// LoadBytes decodes an image held in memory, auto-detecting the format.
func LoadBytes(data []byte) (rawpix.Grid, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (rawpix.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	return FromImage(img), nil
}

// Identify reads only the header of the image at path.
func Identify(path string) (Info, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Info{}, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeInfo(f)
}

// DecodeInfo reads the dimensions and format of the image in r.
func DecodeInfo(r io.Reader) (Info, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("codec: decode config: %w", err)
	}
	format, err := ParseFormat(name)
	if err != nil {
		return Info{}, err
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Save encodes g into the file at path. The format is taken from the file
// extension unless WithFormat is given. A failed encode removes the file.
func Save(path string, g rawpix.Grid, opts ...Option) error {
	o := applyOptions(opts)
	format := o.format
	if !o.formatSet {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}

	if err := encode(f, g, format, o); err != nil {
		_ = f.Close()
		_ = os.Remove(filepath.Clean(path))
		return err
	}
	rawpix.Logger().Debug("codec: saved", "path", path, "format", format.String())

	return f.Close()
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g rawpix.Grid, format Format, opts ...Option) error {
	return encode(w, g, format, applyOptions(opts))
}

// EncodeToBytes encodes g in the given format and returns the bytes.
func EncodeToBytes(g rawpix.Grid, format Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(w io.Writer, g rawpix.Grid, format Format, o options) error {
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}

	if o.width > 0 && (o.width != g.Width() || o.height != g.Height()) {
		var err error
		if g, err = Resize(g, o.width, o.height); err != nil {
			return err
		}
	}

	if format == FormatRaw {
		return EncodeRaw(w, g)
	}

	img, err := ToImage(g)
	if err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: o.quality})
	case FormatGIF:
		rawpix.Logger().Warn("codec: GIF output is limited to 256 colors")
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", format, err)
	}
	return nil
}

// Resize resamples g to width x height with a Catmull-Rom filter and
// returns a new grid.
func Resize(g rawpix.Grid, width, height int) (rawpix.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	src, err := ToImage(g)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst), nil
}

// FromImage converts img into a grid. Alpha is dropped and every pixel
// keeps its straight (non-premultiplied) color, whatever the concrete
// image type. Models wider than 8 bits keep the high byte of each channel.
func FromImage(img image.Image) rawpix.Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	g := rawpix.NewGrid(width, height)

	switch m := img.(type) {
	case *image.NRGBA:
		for y := range height {
			row := m.Pix[y*m.Stride : y*m.Stride+width*4]
			for x := range width {
				g[y][x] = rawpix.Pixel{row[x*4], row[x*4+1], row[x*4+2]}
			}
		}
		return g
	case *image.RGBA:
		for y := range height {
			row := m.Pix[y*m.Stride : y*m.Stride+width*4]
			for x := range width {
				c := color.RGBA{row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]}
				g[y][x] = straight(c)
			}
		}
		return g
	}

	for y := range height {
		for x := range width {
			g[y][x] = straight(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return g
}

// straight un-premultiplies c into an RGB pixel.
func straight(c color.Color) rawpix.Pixel {
	if rgba, ok := c.(color.RGBA); ok && rgba.A == 0xff {
		return rawpix.Pixel{rgba.R, rgba.G, rgba.B}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rawpix.Pixel{n.R, n.G, n.B}
}

// ToImage converts g into an opaque *image.NRGBA.
// It returns ErrEmptyGrid for a grid without pixels and
// rawpix.ErrInvalidGridShape for a ragged one.
func ToImage(g rawpix.Grid) (*image.NRGBA, error) {
	if err := rawpix.Validate(g); err != nil {
		return nil, err
	}
	if g.Width() == 0 || g.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	return toNRGBA(g), nil
}

// toNRGBA assumes g is rectangular.
func toNRGBA(g rawpix.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		dst := img.Pix[y*img.Stride:]
		for x, p := range row {
			off := x * 4
			dst[off] = p[rawpix.R]
			dst[off+1] = p[rawpix.G]
			dst[off+2] = p[rawpix.B]
			dst[off+3] = 255 // Opaque
		}
	}
	return img
}
