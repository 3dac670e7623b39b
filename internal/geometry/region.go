package geometry

import (
	"fmt"
	"image"
	"math"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
)

// Region is an axis aligned rectangle in image pixel coordinates.
// It is half-open: Left and Top are inside, Right and Bottom are not.
// Edges may be fractional once a region with an odd side has been split.
type Region struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Builds a new Region from its edges
func NewRegion(left, top, right, bottom float64) Region {
	return Region{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// Builds the Region covering a whole image of the given size
func NewImageRegion(width, height int) Region {
	return NewRegion(0, 0, float64(width), float64(height))
}

func (r Region) Width() float64 {
	return math.Max(r.Right-r.Left, 0)
}

func (r Region) Height() float64 {
	return math.Max(r.Bottom-r.Top, 0)
}

func (r Region) Area() float64 {
	return r.Width() * r.Height()
}

func (r Region) IsEmpty() bool {
	return r.Area() == 0
}

// Mid returns the center of the region
func (r Region) Mid() data.Point {
	return data.NewPoint(
		r.Left+(r.Right-r.Left)/2,
		r.Top+(r.Bottom-r.Top)/2,
	)
}

// Quadrants splits the region at center, in top-left, top-right,
// bottom-left, bottom-right order
func (r Region) Quadrants(center data.Point) [4]Region {
	return [4]Region{
		NewRegion(r.Left, r.Top, center.X, center.Y),
		NewRegion(center.X, r.Top, r.Right, center.Y),
		NewRegion(r.Left, center.Y, center.X, r.Bottom),
		NewRegion(center.X, center.Y, r.Right, r.Bottom),
	}
}

// Contains reports whether the point lies inside the half-open region
func (r Region) Contains(p data.Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersects reports whether the two regions share a non empty area
func (r Region) Intersects(other Region) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Rectangle returns the pixel rectangle covered by the region, every edge
// rounded to the nearest pixel boundary
func (r Region) Rectangle() image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Right)),
		int(math.Round(r.Bottom)),
	)
}

func (r Region) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.Left, r.Top, r.Right, r.Bottom)
}
