package pkg

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/ecopia-map/quadtree_compressor/internal/archive"
	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
	"github.com/ecopia-map/quadtree_compressor/internal/viewer"
	"github.com/ecopia-map/quadtree_compressor/pkg/algorithm_manager"
	"github.com/ecopia-map/quadtree_compressor/tools"
)

// Suffix of the image rendered from a .qtz archive
const DecodedSuffix = "_decoded"

type ArchiveDecoder struct {
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewArchiveDecoder(algorithmManager algorithm_manager.AlgorithmManager) ICompressor {
	return &ArchiveDecoder{
		algorithmManager: algorithmManager,
	}
}

// Decodes the .qtz archive given as input, verifies it and renders it to <name>_decoded.png
func (d *ArchiveDecoder) RunCompressor(opts *compressor.CompressorOptions) error {
	tools.LogOutput("> reading archive...", filepath.Base(opts.Input))
	a, err := readArchive(opts.Input)
	if err != nil {
		return err
	}

	if err := VerifyArchive(a); err != nil {
		return err
	}
	glog.V(1).Infof("archive verified. size:[%dx%d] depth:[%d] leaves:[%d]", a.Width, a.Height, a.Depth, len(a.Leaves))

	if opts.Output != "" {
		if err := tools.CreateDirectoryIfDoesNotExist(opts.Output); err != nil {
			return err
		}
	}

	decoded := d.algorithmManager.GetRenderer().Render(a.Leaves, a.Width, a.Height, opts.Borders)
	outputPath := tools.DerivedFilePath(opts.Input, opts.Output, DecodedSuffix, ".png")
	if err := writeImage(outputPath, decoded); err != nil {
		return err
	}
	tools.LogOutput("> image written to", outputPath)

	if opts.Show {
		return viewer.Show(decoded, decoded)
	}
	return nil
}

func readArchive(filePath string) (*archive.Archive, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return archive.Decode(file)
}

// VerifyArchive checks that the leaves lie inside the image, are not deeper than the archive depth and cover
// the image area exactly once
func VerifyArchive(a *archive.Archive) error {
	if a.Depth > quadtree.MaxDepth {
		return fmt.Errorf("archive depth %d exceeds %d", a.Depth, quadtree.MaxDepth)
	}

	bounds := geometry.NewImageRegion(a.Width, a.Height)
	var area float64
	for i, leaf := range a.Leaves {
		r := leaf.Region
		if r.Left < bounds.Left || r.Top < bounds.Top || r.Right > bounds.Right || r.Bottom > bounds.Bottom ||
			r.Right < r.Left || r.Bottom < r.Top {
			return fmt.Errorf("leaf %d region %v outside image %v", i, r, bounds)
		}
		if leaf.Depth > a.Depth {
			return fmt.Errorf("leaf %d depth %d exceeds archive depth %d", i, leaf.Depth, a.Depth)
		}
		area += r.Area()
	}

	if math.Abs(area-bounds.Area()) > 1e-6*math.Max(1, bounds.Area()) {
		return fmt.Errorf("leaves cover %g pixels, image has %g", area, bounds.Area())
	}
	return nil
}
