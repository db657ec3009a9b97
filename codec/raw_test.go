package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rawpix"
)

func TestRawRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		grid rawpix.Grid
	}{
		{"1x1", testGrid(1, 1)},
		{"odd", testGrid(13, 7)},
		{"wide", testGrid(300, 2)},
		{"empty", rawpix.Grid{}},
		{"zero width", rawpix.NewGrid(0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeRaw(&buf, tt.grid); err != nil {
				t.Fatalf("EncodeRaw() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte(rawMagic)) {
				t.Fatalf("output does not start with %q", rawMagic)
			}

			got, err := DecodeRaw(&buf)
			if err != nil {
				t.Fatalf("DecodeRaw() error = %v", err)
			}
			if !got.Equal(tt.grid) {
				t.Errorf("round trip mismatch: %s", cmp.Diff(tt.grid, got))
			}
		})
	}
}

func TestRawRegisteredWithImagePackage(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeRaw(&buf, testGrid(5, 3)); err != nil {
		t.Fatalf("EncodeRaw() error = %v", err)
	}

	img, name, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("image.Decode() error = %v", err)
	}
	if name != "rawpix" {
		t.Errorf("format name = %q, want rawpix", name)
	}
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Errorf("Bounds = %v, want 5x3", img.Bounds())
	}
}

func TestDecodeRawErrors(t *testing.T) {
	valid := func() []byte {
		var buf bytes.Buffer
		if err := EncodeRaw(&buf, testGrid(4, 4)); err != nil {
			t.Fatalf("EncodeRaw() error = %v", err)
		}
		return buf.Bytes()
	}

	header := func(w, h uint32) []byte {
		hdr := make([]byte, rawHeaderSize)
		copy(hdr, rawMagic)
		binary.BigEndian.PutUint32(hdr[len(rawMagic):], w)
		binary.BigEndian.PutUint32(hdr[len(rawMagic)+4:], h)
		return hdr
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrBadRawHeader},
		{"short header", []byte("RAWPIX"), ErrBadRawHeader},
		{"wrong magic", append([]byte("NOTRAW01"), make([]byte, 8)...), ErrBadRawHeader},
		{"too many pixels", header(1<<15, 1<<15), ErrBadRawHeader},
		{"huge width zero height", header(1<<28, 0), ErrBadRawHeader},
		{"zero width huge height", header(0, 1<<28), ErrBadRawHeader},
		{"max width zero height", header(0xFFFFFFFF, 0), ErrBadRawHeader},
		{"truncated pixels", valid()[:rawHeaderSize], nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRaw(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("DecodeRaw() returned no error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeRaw() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeConfigRejectsOversizedSide(t *testing.T) {
	hdr := make([]byte, rawHeaderSize)
	copy(hdr, rawMagic)
	binary.BigEndian.PutUint32(hdr[len(rawMagic):], 0)
	binary.BigEndian.PutUint32(hdr[len(rawMagic)+4:], 1<<28)

	if _, _, err := image.DecodeConfig(bytes.NewReader(hdr)); !errors.Is(err, ErrBadRawHeader) {
		t.Errorf("image.DecodeConfig() error = %v, want %v", err, ErrBadRawHeader)
	}
}

func TestEncodeRawRagged(t *testing.T) {
	err := EncodeRaw(io.Discard, rawpix.Grid{{{1, 1, 1}}, {}})
	if !errors.Is(err, rawpix.ErrInvalidGridShape) {
		t.Errorf("EncodeRaw(ragged) error = %v, want %v", err, rawpix.ErrInvalidGridShape)
	}
}
