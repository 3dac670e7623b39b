package quadtree

import (
	"errors"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
)

const (
	// Depth at which a node always becomes a leaf
	MaxDepth = 8

	// Luma weighted standard deviation at or below which a node becomes a leaf
	ErrorThreshold = 13
)

// Returned when leaves are requested deeper than the tree was built
var ErrInvalidDepth = errors.New("requested depth is greater than the tree height")

// Leaf is the part of a node handed to renderers and archives: the area it
// covers, the color it is painted with and the depth it was found at
type Leaf struct {
	Region geometry.Region
	Color  data.Color
	Depth  int
}

type ITree interface {
	Build() error
	GetRootNode() INode
	IsBuilt() bool
	Width() int
	Height() int
	// Deepest depth a leaf was found at during Build
	MaxDepth() int
	GetLeaves(depth int) ([]Leaf, error)

	InsertPoint(point data.Point)
	RemovePoint(point data.Point) bool
	FindNodeContainingPoint(point data.Point) INode
}

type INode interface {
	GetRegion() geometry.Region
	GetDepth() int
	GetCenter() data.Point
	GetAverageColor() data.Color
	GetError() float64
	IsLeaf() bool
	HasChildren() bool
	GetPoints() []data.Point
	Leaf() Leaf
}
