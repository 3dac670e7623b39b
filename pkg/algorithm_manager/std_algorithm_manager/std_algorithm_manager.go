package std_algorithm_manager

import (
	"image"

	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
	"github.com/ecopia-map/quadtree_compressor/internal/preprocess"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree/color_tree"
	"github.com/ecopia-map/quadtree_compressor/internal/render"
	"github.com/ecopia-map/quadtree_compressor/internal/sampler"
	"github.com/ecopia-map/quadtree_compressor/pkg/algorithm_manager"
)

type StandardAlgorithmManager struct {
	options *compressor.CompressorOptions
}

func NewAlgorithmManager(opts *compressor.CompressorOptions) algorithm_manager.AlgorithmManager {
	return &StandardAlgorithmManager{
		options: opts,
	}
}

func (m *StandardAlgorithmManager) GetPreprocessOptions() preprocess.Options {
	return preprocess.Options{
		MaxSize: m.options.MaxSize,
		Blur:    m.options.Blur,
	}
}

// Returns an unbuilt tree sampling img
func (m *StandardAlgorithmManager) GetTreeAlgorithm(img image.Image) *color_tree.ColorTree {
	s := sampler.NewImageSampler(img)
	return color_tree.NewColorTree(s, s.Width(), s.Height(), m.options.Workers)
}

func (m *StandardAlgorithmManager) GetRenderer() render.Renderer {
	return render.NewRectangleRenderer()
}
