package preprocess

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
)

type Options struct {
	// Longest side allowed after downscaling, 0 keeps the original size
	MaxSize int
	// Sigma of the gaussian blur, 0 disables the blur
	Blur float64
}

// Apply downscales and blurs img according to opts. The input image is returned untouched when there is nothing to do.
func Apply(img image.Image, opts Options) image.Image {
	out := img

	if opts.MaxSize > 0 {
		b := out.Bounds()
		if w, h := b.Dx(), b.Dy(); w > opts.MaxSize || h > opts.MaxSize {
			// a zero dimension keeps the aspect ratio
			if w >= h {
				out = resize.Resize(uint(opts.MaxSize), 0, out, resize.Lanczos3)
			} else {
				out = resize.Resize(0, uint(opts.MaxSize), out, resize.Lanczos3)
			}
			glog.V(1).Infof("image resized. from:[%dx%d] to:[%dx%d]", w, h, out.Bounds().Dx(), out.Bounds().Dy())
		}
	}

	if opts.Blur > 0 {
		g := gift.New(gift.GaussianBlur(float32(opts.Blur)))
		blurred := image.NewRGBA(g.Bounds(out.Bounds()))
		g.Draw(blurred, out)
		glog.V(1).Infof("gaussian blur applied. sigma:[%g]", opts.Blur)
		out = blurred
	}

	return out
}
