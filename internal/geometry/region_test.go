package geometry

import (
	"image"
	"testing"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
)

func TestQuadrantsPartitionRegion(t *testing.T) {
	for _, tc := range []struct {
		name   string
		region Region
	}{
		{name: "even", region: NewRegion(0, 0, 8, 8)},
		{name: "odd", region: NewRegion(0, 0, 7, 5)},
		{name: "fractional", region: NewRegion(1.5, 2.25, 4.75, 9)},
		{name: "degenerate", region: NewRegion(3, 3, 3, 10)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			quadrants := tc.region.Quadrants(tc.region.Mid())

			var area float64
			for i, q := range quadrants {
				area += q.Area()
				for j := i + 1; j < len(quadrants); j++ {
					if q.Intersects(quadrants[j]) {
						t.Errorf("quadrant %d %v overlaps quadrant %d %v", i, q, j, quadrants[j])
					}
				}
			}
			if area != tc.region.Area() {
				t.Fatalf("quadrant areas sum to %g, want %g", area, tc.region.Area())
			}

			if quadrants[0].Left != tc.region.Left || quadrants[0].Top != tc.region.Top {
				t.Errorf("top-left quadrant %v does not start at region origin", quadrants[0])
			}
			if quadrants[3].Right != tc.region.Right || quadrants[3].Bottom != tc.region.Bottom {
				t.Errorf("bottom-right quadrant %v does not end at region corner", quadrants[3])
			}
		})
	}
}

func TestMid(t *testing.T) {
	got := NewRegion(0, 0, 5, 3).Mid()
	want := data.NewPoint(2.5, 1.5)
	if !got.Equals(want) {
		t.Fatalf("Mid() = %v, want %v", got, want)
	}
}

func TestContainsIsHalfOpen(t *testing.T) {
	r := NewRegion(0, 0, 4, 4)
	for _, tc := range []struct {
		p    data.Point
		want bool
	}{
		{data.NewPoint(0, 0), true},
		{data.NewPoint(3.99, 3.99), true},
		{data.NewPoint(4, 0), false},
		{data.NewPoint(0, 4), false},
		{data.NewPoint(-0.1, 2), false},
	} {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectangleRoundsEdges(t *testing.T) {
	got := NewRegion(0.4, 1.5, 3.5, 7.6).Rectangle()
	want := image.Rect(0, 2, 4, 8)
	if got != want {
		t.Fatalf("Rectangle() = %v, want %v", got, want)
	}
}
