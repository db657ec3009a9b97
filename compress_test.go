package rawpix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name string
		in   Grid
		want Grid
	}{
		{
			name: "4x4",
			in: Grid{
				{{233, 100, 115}, {0, 0, 0}, {255, 255, 0}, {3, 6, 7}},
				{{199, 201, 116}, {1, 9, 0}, {255, 100, 100}, {99, 99, 0}},
				{{200, 200, 200}, {1, 9, 0}, {255, 100, 100}, {99, 99, 0}},
				{{50, 100, 150}, {1, 9, 0}, {211, 5, 22}, {199, 0, 10}},
			},
			want: Grid{
				{{108, 77, 57}, {153, 115, 26}},
				{{63, 79, 87}, {191, 51, 33}},
			},
		},
		{
			name: "3x3 with edges",
			in: Grid{
				{{233, 100, 115}, {0, 0, 0}, {255, 255, 0}},
				{{199, 201, 116}, {1, 9, 0}, {255, 100, 100}},
				{{123, 233, 151}, {111, 99, 10}, {0, 1, 1}},
			},
			want: Grid{
				{{108, 77, 57}, {255, 177, 50}},
				{{117, 166, 80}, {0, 1, 1}},
			},
		},
		{
			name: "single pixel",
			in:   Grid{{{9, 8, 7}}},
			want: Grid{{{9, 8, 7}}},
		},
		{
			name: "single row",
			in:   Grid{{{10, 20, 30}, {11, 21, 31}, {5, 5, 5}}},
			want: Grid{{{10, 20, 30}, {5, 5, 5}}},
		},
		{
			name: "single column",
			in:   Grid{{{10, 20, 30}}, {{13, 23, 33}}, {{5, 5, 5}}},
			want: Grid{{{11, 21, 31}}, {{5, 5, 5}}},
		},
		{
			name: "white stays white",
			in:   solidGrid(3, 3, White),
			want: solidGrid(2, 2, White),
		},
		{
			name: "empty",
			in:   Grid{},
			want: Grid{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compress(tt.in)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compress mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompressEvenBlockAverage(t *testing.T) {
	g := patternGrid(8, 6)
	got, err := Compress(g)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if got.Width() != 4 || got.Height() != 3 {
		t.Fatalf("Compress(8x6) = %dx%d, want 4x3", got.Width(), got.Height())
	}

	for i := range got {
		for j := range got[i] {
			for c := range 3 {
				sum := int(g[2*i][2*j][c]) + int(g[2*i][2*j+1][c]) +
					int(g[2*i+1][2*j][c]) + int(g[2*i+1][2*j+1][c])
				if want := uint8(sum / 4); got[i][j][c] != want {
					t.Errorf("pixel (%d,%d) channel %d = %d, want %d", i, j, c, got[i][j][c], want)
				}
			}
		}
	}
}

func TestCompressDimensions(t *testing.T) {
	for w := 1; w <= 5; w++ {
		for h := 1; h <= 5; h++ {
			got, err := Compress(patternGrid(w, h))
			if err != nil {
				t.Fatalf("Compress(%dx%d) error = %v", w, h, err)
			}
			if got.Width() != (w+1)/2 || got.Height() != (h+1)/2 {
				t.Errorf("Compress(%dx%d) = %dx%d, want %dx%d", w, h, got.Width(), got.Height(), (w+1)/2, (h+1)/2)
			}
		}
	}
}

func TestCompressDoesNotModifyInput(t *testing.T) {
	g := patternGrid(5, 5)
	orig := g.Clone()
	if _, err := Compress(g); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if !g.Equal(orig) {
		t.Error("Compress modified its input")
	}
}

func TestCompressRagged(t *testing.T) {
	ragged := Grid{{{1, 1, 1}, {1, 1, 1}}, {{1, 1, 1}}}
	if _, err := Compress(ragged); !errors.Is(err, ErrInvalidGridShape) {
		t.Errorf("Compress(ragged) error = %v, want %v", err, ErrInvalidGridShape)
	}
}

func BenchmarkCompress(b *testing.B) {
	g := patternGrid(512, 512)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Compress(g)
	}
}
