package sampler

import (
	"image"
	"image/draw"

	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
	"github.com/ecopia-map/quadtree_compressor/internal/stats"
)

// Sampler returns the color histogram of a region of the source image.
// Implementations must be safe for concurrent use.
type Sampler interface {
	Histogram(region geometry.Region) *stats.Histogram
}

// ImageSampler samples an in memory RGBA copy of the source image
type ImageSampler struct {
	rgba *image.RGBA
}

// Builds a new ImageSampler. The image is copied once into an RGBA buffer
// whose origin is (0, 0), so regions are always relative to the image corner.
func NewImageSampler(img image.Image) *ImageSampler {
	return &ImageSampler{
		rgba: toRGBA(img),
	}
}

func (s *ImageSampler) Width() int {
	return s.rgba.Bounds().Dx()
}

func (s *ImageSampler) Height() int {
	return s.rgba.Bounds().Dy()
}

// Image returns the RGBA copy being sampled
func (s *ImageSampler) Image() *image.RGBA {
	return s.rgba
}

// Histogram counts the pixels of the region, clipped to the image bounds.
// Regions without pixels produce an all zero histogram.
func (s *ImageSampler) Histogram(region geometry.Region) *stats.Histogram {
	hist := &stats.Histogram{}

	rect := region.Rectangle().Intersect(s.rgba.Bounds())
	if rect.Empty() {
		return hist
	}

	pix := s.rgba.Pix
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		offset := s.rgba.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			hist.Add(pix[offset], pix[offset+1], pix[offset+2])
			offset += 4
		}
	}

	return hist
}

// copies any image.Image into an *image.RGBA with bounds starting at (0,0)
func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
