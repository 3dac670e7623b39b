package color_tree

import (
	"fmt"
	"sync/atomic"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
	"github.com/ecopia-map/quadtree_compressor/internal/sampler"
	"github.com/ecopia-map/quadtree_compressor/internal/stats"
)

// Index of each quadrant in ColorNode.children
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Models a node of the quadtree, which covers a region of the source image.
// The average color and the error of the region are computed once, when the
// node is built. A node either has exactly four children, one per quadrant,
// or none. Nodes without children are marked as leaves by the tree build.
// Points stored by the point index are kept per node and are unrelated to the
// image partitioning.
type ColorNode struct {
	region       geometry.Region
	depth        int
	center       data.Point
	averageColor data.Color
	err          float64
	children     [4]*ColorNode
	hasChildren  bool
	leaf         int32
	points       []data.Point
}

// Instantiates a new ColorNode sampling the histogram of its region
func NewColorNode(s sampler.Sampler, region geometry.Region, depth int) *ColorNode {
	averageColor, err := stats.ColorFromHistogram(s.Histogram(region))

	node := ColorNode{
		region:       region,       // area of the image covered by the node
		depth:        depth,        // distance from the root
		center:       region.Mid(), // split point of the children quadrants
		averageColor: averageColor, // color painted for the region
		err:          err,          // luma weighted standard deviation of the region
		leaf:         0,            // 1 once the build decides not to split
		points:       make([]data.Point, 0),
	}

	return &node
}

// Split creates the four children of the node, partitioned at its center.
// The node's own statistics are left untouched.
func (n *ColorNode) Split(s sampler.Sampler) {
	for i, region := range n.region.Quadrants(n.center) {
		n.children[i] = NewColorNode(s, region, n.depth+1)
	}
	n.hasChildren = true
}

func (n *ColorNode) GetRegion() geometry.Region {
	return n.region
}

func (n *ColorNode) GetDepth() int {
	return n.depth
}

func (n *ColorNode) GetCenter() data.Point {
	return n.center
}

func (n *ColorNode) GetAverageColor() data.Color {
	return n.averageColor
}

func (n *ColorNode) GetError() float64 {
	return n.err
}

// GetChildren returns the children in top-left, top-right, bottom-left,
// bottom-right order. All four are nil when the node has not been split.
func (n *ColorNode) GetChildren() [4]*ColorNode {
	return n.children
}

func (n *ColorNode) HasChildren() bool {
	return n.hasChildren
}

func (n *ColorNode) IsLeaf() bool {
	return atomic.LoadInt32(&n.leaf) == 1
}

// GetPoints returns the points recorded at this node by the point index
func (n *ColorNode) GetPoints() []data.Point {
	return n.points
}

func (n *ColorNode) Leaf() quadtree.Leaf {
	return quadtree.Leaf{
		Region: n.region,
		Color:  n.averageColor,
		Depth:  n.depth,
	}
}

func (n *ColorNode) String() string {
	return fmt.Sprintf("ColorNode%v depth=%d", n.region, n.depth)
}

// reports whether the build must stop at this node
func (n *ColorNode) shouldStop() bool {
	return n.depth >= quadtree.MaxDepth || n.err <= quadtree.ErrorThreshold
}

// sets the leaf flag to 1 atomically
func (n *ColorNode) setLeafFlag() {
	atomic.StoreInt32(&n.leaf, 1)
}
