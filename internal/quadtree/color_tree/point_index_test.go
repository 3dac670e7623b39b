package color_tree

import (
	"image/color"
	"testing"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
)

var colorGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

func containsPoint(points []data.Point, p data.Point) bool {
	for _, q := range points {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

func TestInsertFindRemove(t *testing.T) {
	tree := buildTree(t, makeNoiseImage(64, 48, 7), 2)

	for _, p := range []data.Point{
		data.NewPoint(0, 0),
		data.NewPoint(63.5, 47.5),
		data.NewPoint(10.25, 30),
		data.NewPoint(32, 24),
	} {
		tree.InsertPoint(p)

		terminal, path := tree.FindNode(p)
		if terminal.HasChildren() {
			t.Fatalf("%v: terminal node %v has children", p, terminal)
		}
		if !terminal.GetRegion().Contains(p) {
			t.Fatalf("%v: terminal region %v does not contain the point", p, terminal.GetRegion())
		}
		if len(path) == 0 || path[0] != tree.GetRoot() || path[len(path)-1] != terminal {
			t.Fatalf("%v: path does not run from root to terminal", p)
		}
		for i, node := range path {
			if node.GetDepth() != i {
				t.Fatalf("%v: path node %d at depth %d", p, i, node.GetDepth())
			}
			if !containsPoint(node.GetPoints(), p) {
				t.Fatalf("%v: point not recorded at path node %v", p, node)
			}
		}
		if tree.FindNodeContainingPoint(p) != terminal {
			t.Fatalf("%v: FindNodeContainingPoint disagrees with FindNode", p)
		}

		if !tree.RemovePoint(p) {
			t.Fatalf("%v: RemovePoint returned false", p)
		}
		if containsPoint(terminal.GetPoints(), p) {
			t.Fatalf("%v: point still in terminal node after removal", p)
		}
		if len(path) > 1 && !containsPoint(path[len(path)-2].GetPoints(), p) {
			t.Fatalf("%v: removal touched the parent of the terminal node", p)
		}
	}
}

func TestCenterGoesToGreaterSide(t *testing.T) {
	tree := buildTree(t, makeCheckerboardImage(8, 8), 1)
	root := tree.GetRoot()

	_, path := root.FindNode(root.GetCenter())
	if path[1] != root.GetChildren()[BottomRight] {
		t.Fatalf("center point descended to %v, want the bottom-right child", path[1])
	}

	onVertical := data.NewPoint(root.GetCenter().X, 1)
	_, path = root.FindNode(onVertical)
	if path[1] != root.GetChildren()[TopRight] {
		t.Fatalf("point on the vertical center line descended to %v, want top-right", path[1])
	}
}

func TestRemoveMatchesBothCoordinates(t *testing.T) {
	tree := buildTree(t, makeUniformImage(8, 8, colorGray), 1)

	p := data.NewPoint(3, 5)
	tree.InsertPoint(p)
	tree.InsertPoint(p)

	if tree.RemovePoint(data.NewPoint(5, 5)) {
		t.Fatal("removed a point that only shares its y coordinate")
	}
	if tree.RemovePoint(data.NewPoint(5, 3)) {
		t.Fatal("removed a point with swapped coordinates")
	}
	if !tree.RemovePoint(p) {
		t.Fatal("RemovePoint(p) returned false")
	}

	points := tree.GetRoot().GetPoints()
	if len(points) != 1 || !points[0].Equals(p) {
		t.Fatalf("root holds %v, want exactly one copy of %v", points, p)
	}
}

func TestRemoveMissingPoint(t *testing.T) {
	tree := buildTree(t, makeCheckerboardImage(4, 4), 1)
	if tree.RemovePoint(data.NewPoint(1, 1)) {
		t.Fatal("RemovePoint on an empty index returned true")
	}
}
