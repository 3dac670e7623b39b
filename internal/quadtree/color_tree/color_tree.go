package color_tree

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
	"github.com/ecopia-map/quadtree_compressor/internal/sampler"
)

// Represents a ColorTree of an image and contains all information needed
// to split its regions and extract leaves at any depth
type ColorTree struct {
	rootNode        *ColorNode
	built           bool
	width           int
	height          int
	numWorkers      int
	maxDepthReached int32
	sampler         sampler.Sampler
	sync.RWMutex
}

// Builds an empty ColorTree over an image of the given size. A non positive
// numWorkers uses one worker per CPU.
func NewColorTree(s sampler.Sampler, width int, height int, numWorkers int) *ColorTree {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &ColorTree{
		built:      false,
		width:      width,
		height:     height,
		numWorkers: numWorkers,
		sampler:    s,
	}
}

// BuildColorTree creates and builds a ColorTree in one call
func BuildColorTree(s sampler.Sampler, width int, height int, numWorkers int) (*ColorTree, error) {
	tree := NewColorTree(s, width, height, numWorkers)
	if err := tree.Build(); err != nil {
		return nil, err
	}
	return tree, nil
}

// Builds the hierarchical tree structure
func (tree *ColorTree) Build() error {
	tree.Lock()
	defer tree.Unlock()

	if tree.built {
		return errors.New("quadtree already built")
	}

	tree.init()

	pool := newBuildPool(tree, tree.numWorkers)
	pool.launchParallelBuilders(tree.numWorkers)
	err := pool.buildSubtree(tree.rootNode)
	pool.close()

	if err != nil {
		return err
	}

	tree.built = true
	glog.V(1).Infof("quadtree built. size:[%dx%d] max_depth:[%d] workers:[%d]",
		tree.width, tree.height, tree.MaxDepth(), tree.numWorkers)

	return nil
}

func (tree *ColorTree) GetRootNode() quadtree.INode {
	if tree.rootNode == nil {
		return nil
	}
	return tree.rootNode
}

// GetRoot returns the concrete root node
func (tree *ColorTree) GetRoot() *ColorNode {
	return tree.rootNode
}

func (tree *ColorTree) IsBuilt() bool {
	return tree.built
}

func (tree *ColorTree) Width() int {
	return tree.width
}

func (tree *ColorTree) Height() int {
	return tree.height
}

func (tree *ColorTree) MaxDepth() int {
	return int(atomic.LoadInt32(&tree.maxDepthReached))
}

// GetLeafNodes walks the tree in pre-order and collects every node that is
// either a leaf or at the given depth, without descending past a collected
// node. The collected regions partition the whole image.
func (tree *ColorTree) GetLeafNodes(depth int) ([]*ColorNode, error) {
	if !tree.built {
		return nil, errors.New("quadtree not built, data structure not initialized")
	}
	if depth > tree.MaxDepth() {
		return nil, fmt.Errorf("%w: requested %d, tree height %d", quadtree.ErrInvalidDepth, depth, tree.MaxDepth())
	}

	leafNodes := make([]*ColorNode, 0)
	tree.collectLeafNodes(tree.rootNode, depth, &leafNodes)

	return leafNodes, nil
}

// GetLeaves returns the same nodes as GetLeafNodes as renderer tuples
func (tree *ColorTree) GetLeaves(depth int) ([]quadtree.Leaf, error) {
	nodes, err := tree.GetLeafNodes(depth)
	if err != nil {
		return nil, err
	}

	leaves := make([]quadtree.Leaf, len(nodes))
	for i, node := range nodes {
		leaves[i] = node.Leaf()
	}
	return leaves, nil
}

func (tree *ColorTree) collectLeafNodes(node *ColorNode, depth int, leafNodes *[]*ColorNode) {
	if node.IsLeaf() || node.depth == depth {
		*leafNodes = append(*leafNodes, node)
		return
	}
	if !node.HasChildren() {
		return
	}
	for _, child := range node.children {
		tree.collectLeafNodes(child, depth, leafNodes)
	}
}

// DepthStats counts nodes of a built tree at one depth
type DepthStats struct {
	Depth  int `json:"depth"`
	Nodes  int `json:"nodes"`
	Leaves int `json:"leaves"`
}

// Stats returns node and leaf counts for every depth of the tree
func (tree *ColorTree) Stats() []DepthStats {
	result := make([]DepthStats, quadtree.MaxDepth+1)
	for i := range result {
		result[i].Depth = i
	}
	if tree.rootNode == nil {
		return result[:0]
	}

	var walk func(node *ColorNode)
	walk = func(node *ColorNode) {
		result[node.depth].Nodes++
		if node.IsLeaf() {
			result[node.depth].Leaves++
			return
		}
		if node.HasChildren() {
			for _, child := range node.children {
				walk(child)
			}
		}
	}
	walk(tree.rootNode)

	return result[:tree.MaxDepth()+1]
}

// InsertPoint records the point along its descent path from the root
func (tree *ColorTree) InsertPoint(point data.Point) {
	if tree.rootNode == nil {
		return
	}
	tree.rootNode.InsertPoint(point)
}

// RemovePoint removes the point from the node it descends to
func (tree *ColorTree) RemovePoint(point data.Point) bool {
	if tree.rootNode == nil {
		return false
	}
	return tree.rootNode.RemovePoint(point)
}

func (tree *ColorTree) FindNodeContainingPoint(point data.Point) quadtree.INode {
	if tree.rootNode == nil {
		return nil
	}
	return tree.rootNode.FindNodeContainingPoint(point)
}

// FindNode returns the node the point descends to and the path leading to it
func (tree *ColorTree) FindNode(point data.Point) (*ColorNode, []*ColorNode) {
	if tree.rootNode == nil {
		return nil, nil
	}
	return tree.rootNode.FindNode(point)
}

func (tree *ColorTree) init() {
	region := geometry.NewImageRegion(tree.width, tree.height)
	glog.V(2).Infoln("quadtree.region(left,top,right,bottom):", region)

	tree.rootNode = NewColorNode(tree.sampler, region, 0)
	atomic.StoreInt32(&tree.maxDepthReached, 0)
}

// raises maxDepthReached to depth if it is lower, safe for concurrent leaves
func (tree *ColorTree) updateMaxDepth(depth int) {
	value := int32(depth)
	for {
		current := atomic.LoadInt32(&tree.maxDepthReached)
		if value <= current {
			return
		}
		if atomic.CompareAndSwapInt32(&tree.maxDepthReached, current, value) {
			return
		}
	}
}
