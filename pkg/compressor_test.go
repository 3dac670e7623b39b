package pkg

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecopia-map/quadtree_compressor/internal/archive"
	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
	"github.com/ecopia-map/quadtree_compressor/internal/data"
	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
	"github.com/ecopia-map/quadtree_compressor/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/quadtree_compressor/tools"
)

func init() {
	tools.DisableLogger()
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func blocksImage(w, h int) *image.RGBA {
	r := rand.New(rand.NewSource(21))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := uint8(0)
			if x < w/2 {
				base = 200
			}
			img.SetRGBA(x, y, color.RGBA{R: base + uint8(r.Intn(40)), G: uint8(r.Intn(256)), B: base, A: 255})
		}
	}
	return img
}

func TestRunCompressorWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "photo.png")
	writePNG(t, source, blocksImage(64, 40))

	opts := &compressor.CompressorOptions{
		Input:   source,
		Level:   3,
		Borders: true,
		Gif:     true,
		Archive: true,
		Workers: 3,
		Command: compressor.CommandCompress,
	}
	err := NewCompressor(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).RunCompressor(opts)
	if err != nil {
		t.Fatalf("RunCompressor: %v", err)
	}

	compressed := readPNG(t, filepath.Join(dir, "photo_quadtree.png"))
	if b := compressed.Bounds(); b.Dx() != 64 || b.Dy() != 40 {
		t.Fatalf("compressed image is %v, want 64x40", b)
	}

	gifFile, err := os.Open(filepath.Join(dir, "photo_quadtree.gif"))
	if err != nil {
		t.Fatal(err)
	}
	defer gifFile.Close()
	anim, err := gif.DecodeAll(gifFile)
	if err != nil {
		t.Fatal(err)
	}

	archiveFile, err := os.Open(filepath.Join(dir, "photo_quadtree.qtz"))
	if err != nil {
		t.Fatal(err)
	}
	defer archiveFile.Close()
	a, err := archive.Decode(archiveFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyArchive(a); err != nil {
		t.Fatalf("VerifyArchive: %v", err)
	}
	if a.Depth != 3 {
		t.Fatalf("archive depth = %d, want 3", a.Depth)
	}
	if len(anim.Image) < a.Depth+1 || len(anim.Image) > quadtree.MaxDepth+1 {
		t.Fatalf("animation has %d frames", len(anim.Image))
	}

	decodeOpts := &compressor.CompressorOptions{
		Input:   filepath.Join(dir, "photo_quadtree.qtz"),
		Borders: true,
		Command: compressor.CommandDecode,
	}
	if err := NewArchiveDecoder(std_algorithm_manager.NewAlgorithmManager(decodeOpts)).RunCompressor(decodeOpts); err != nil {
		t.Fatalf("decoder: %v", err)
	}
	decoded := readPNG(t, filepath.Join(dir, "photo_quadtree_decoded.png"))
	for y := 0; y < 40; y++ {
		for x := 0; x < 64; x++ {
			if decoded.At(x, y) != compressed.At(x, y) {
				t.Fatalf("decoded archive differs from the compressed image at (%d, %d)", x, y)
			}
		}
	}
}

func TestRunCompressorClampsLevel(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	source := filepath.Join(dir, "flat.png")
	flat := image.NewRGBA(image.Rect(0, 0, 10, 6))
	for i := range flat.Pix {
		flat.Pix[i] = 90
		if i%4 == 3 {
			flat.Pix[i] = 255
		}
	}
	writePNG(t, source, flat)

	opts := &compressor.CompressorOptions{Input: source, Output: out, Level: 6}
	err := NewCompressor(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).RunCompressor(opts)
	if err != nil {
		t.Fatalf("RunCompressor: %v", err)
	}
	img := readPNG(t, filepath.Join(out, "flat_quadtree.png"))
	r, g, b, _ := img.At(9, 5).RGBA()
	if r>>8 != 90 || g>>8 != 90 || b>>8 != 90 {
		t.Fatalf("pixel = (%d, %d, %d), want the flat color", r>>8, g>>8, b>>8)
	}
}

func TestVerifyArchive(t *testing.T) {
	full := geometry.NewImageRegion(4, 4)
	halves := full.Quadrants(full.Mid())

	for _, tc := range []struct {
		name    string
		archive archive.Archive
		wantErr bool
	}{
		{
			name:    "single_leaf",
			archive: archive.Archive{Width: 4, Height: 4, Leaves: []quadtree.Leaf{{Region: full, Color: data.Color{R: 1}}}},
		},
		{
			name:    "missing_quadrant",
			archive: archive.Archive{Width: 4, Height: 4, Depth: 1, Leaves: []quadtree.Leaf{{Region: halves[0], Depth: 1}, {Region: halves[1], Depth: 1}}},
			wantErr: true,
		},
		{
			name:    "outside_image",
			archive: archive.Archive{Width: 2, Height: 2, Leaves: []quadtree.Leaf{{Region: full}}},
			wantErr: true,
		},
		{
			name:    "too_deep",
			archive: archive.Archive{Width: 4, Height: 4, Depth: 0, Leaves: []quadtree.Leaf{{Region: full, Depth: 1}}},
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifyArchive(&tc.archive)
			if (err != nil) != tc.wantErr {
				t.Fatalf("VerifyArchive error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
