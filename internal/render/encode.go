package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/soniakeys/quant/median"
)

const (
	// Display time of every animation frame, in 1/100 s
	FrameDelay = 80

	// Plays the animation once
	LoopOnce = -1

	paletteSize = 256
)

// EncodeImage writes img in the format named by ext (png, jpg or jpeg)
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// EncodeAnimation writes frames as a GIF played once, every frame shown for
// FrameDelay. Each frame gets its own median cut palette.
func EncodeAnimation(w io.Writer, frames []*image.RGBA) error {
	if len(frames) == 0 {
		return errors.New("animation has no frames")
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: LoopOnce,
	}
	for i, frame := range frames {
		anim.Image[i] = toPaletted(frame)
		anim.Delay[i] = FrameDelay
	}

	return gif.EncodeAll(w, anim)
}

// quantizes a frame without dithering, quadtree frames are flat blocks
func toPaletted(img *image.RGBA) *image.Paletted {
	var q draw.Quantizer = median.Quantizer(paletteSize)
	palette := q.Quantize(make(color.Palette, 0, paletteSize), img)
	if len(palette) == 0 {
		palette = color.Palette{color.Black}
	}

	b := img.Bounds()
	paletted := image.NewPaletted(b, palette)
	draw.Draw(paletted, b, img, b.Min, draw.Src)
	return paletted
}
