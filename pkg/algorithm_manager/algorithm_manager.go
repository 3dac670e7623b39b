package algorithm_manager

import (
	"image"

	"github.com/ecopia-map/quadtree_compressor/internal/preprocess"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree/color_tree"
	"github.com/ecopia-map/quadtree_compressor/internal/render"
)

type AlgorithmManager interface {
	GetPreprocessOptions() preprocess.Options
	GetTreeAlgorithm(img image.Image) *color_tree.ColorTree
	GetRenderer() render.Renderer
}
