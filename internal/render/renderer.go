package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
)

// Renderer paints a set of leaves into a raster of the given size
type Renderer interface {
	Render(leaves []quadtree.Leaf, width int, height int, borders bool) *image.RGBA
}

// RectangleRenderer fills every leaf rectangle with the leaf color over a
// black canvas, optionally outlining each rectangle in black
type RectangleRenderer struct {
	BorderColor color.RGBA
}

func NewRectangleRenderer() *RectangleRenderer {
	return &RectangleRenderer{
		BorderColor: color.RGBA{A: 0xff},
	}
}

func (r *RectangleRenderer) Render(leaves []quadtree.Leaf, width int, height int, borders bool) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.RGBA{A: 0xff}}, image.Point{}, draw.Src)

	for _, leaf := range leaves {
		rect := leaf.Region.Rectangle().Intersect(canvas.Bounds())
		if rect.Empty() {
			continue
		}

		red, green, blue, alpha := leaf.Color.RGBA()
		fill := color.RGBA{R: red, G: green, B: blue, A: alpha}
		draw.Draw(canvas, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)

		if borders {
			r.outline(canvas, rect)
		}
	}

	return canvas
}

// draws the one pixel wide inner edges of rect
func (r *RectangleRenderer) outline(canvas *image.RGBA, rect image.Rectangle) {
	border := &image.Uniform{C: r.BorderColor}
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y),
		image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(canvas, edge, border, image.Point{}, draw.Src)
	}
}
