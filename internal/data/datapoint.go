package data

import "fmt"

// Point is a location in image pixel space. Points are values and are never
// mutated once built.
type Point struct {
	X float64
	Y float64
}

// Builds a new Point from the given coordinates
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equals reports whether both coordinates of the two points match exactly
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.X, p.Y)
}

// Color is an average RGB color, every channel truncated to [0, 255]
type Color struct {
	R int
	G int
	B int
}

// RGBA returns the channels as 8 bit values for the image/color package
func (c Color) RGBA() (r, g, b, a uint8) {
	return clampChannel(c.R), clampChannel(c.G), clampChannel(c.B), 0xff
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
