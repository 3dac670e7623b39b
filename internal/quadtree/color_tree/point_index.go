package color_tree

import (
	"github.com/ecopia-map/quadtree_compressor/internal/data"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
)

// The point index attaches arbitrary points to the geometry of a built tree.
// It never splits nodes and is meant for single goroutine use after Build.
//
// A point is recorded at every node along its descent, so any node holds the
// points that fell inside its region at insertion time. Removal only touches
// the terminal node of the descent.

// InsertPoint records the point at this node and at every node below it on
// the way to the node without children whose quadrant holds the point
func (n *ColorNode) InsertPoint(point data.Point) {
	node := n
	for {
		node.points = append(node.points, point)
		if !node.HasChildren() {
			return
		}
		node = node.children[getQuadrantFromPoint(point, node.center)]
	}
}

// FindNode returns the node without children the point descends to, and
// every node visited from this one down to it
func (n *ColorNode) FindNode(point data.Point) (*ColorNode, []*ColorNode) {
	path := make([]*ColorNode, 0, quadtree.MaxDepth-n.depth+1)

	node := n
	for {
		path = append(path, node)
		if !node.HasChildren() {
			return node, path
		}
		node = node.children[getQuadrantFromPoint(point, node.center)]
	}
}

// RemovePoint deletes one point equal to the given one from the terminal
// node of its descent. Copies held by the ancestors are kept.
func (n *ColorNode) RemovePoint(point data.Point) bool {
	node, _ := n.FindNode(point)

	for i, p := range node.points {
		if p.Equals(point) {
			node.points = append(node.points[:i], node.points[i+1:]...)
			return true
		}
	}
	return false
}

// FindNodeContainingPoint returns the terminal node of the point descent
func (n *ColorNode) FindNodeContainingPoint(point data.Point) *ColorNode {
	node, _ := n.FindNode(point)
	return node
}

// Returns the index of the quadrant that holds the point. A coordinate equal
// to the center goes to the right or bottom side.
func getQuadrantFromPoint(point data.Point, center data.Point) int {
	result := TopLeft
	if point.X >= center.X {
		result += 1
	}
	if point.Y >= center.Y {
		result += 2
	}
	return result
}
