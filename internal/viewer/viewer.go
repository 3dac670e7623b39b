// Package viewer opens a side by side SDL preview of a source image and its quadtree compression
package viewer

import (
	"image"
	"image/draw"

	"github.com/golang/glog"
	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	win  *sdl.Window
	rend *sdl.Renderer
	tex  *sdl.Texture
}

func (w *window) destroy() {
	if w == nil {
		return
	}
	w.tex.Destroy()
	w.rend.Destroy()
	w.win.Destroy()
}

func (w *window) present() {
	w.rend.SetDrawColor(0, 0, 0, 255)
	w.rend.Clear()
	w.rend.Copy(w.tex, nil, nil)
	w.rend.Present()
}

// Show blocks until one of the windows is closed or SDL receives a quit event.
// It must be called from the main goroutine.
func Show(original image.Image, compressed image.Image) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	winOrig, err := newWindow("Original", original, 100, 100)
	if err != nil {
		return err
	}
	defer winOrig.destroy()

	winComp, err := newWindow("Quadtree", compressed, 100+int32(original.Bounds().Dx())+20, 100)
	if err != nil {
		return err
	}
	defer winComp.destroy()

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				glog.V(1).Infoln("preview closed")
				return nil
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_CLOSE {
					glog.V(1).Infof("preview window %d closed", e.WindowID)
					return nil
				}
			}
		}
		winOrig.present()
		winComp.present()
		sdl.Delay(16)
	}
}

func newWindow(title string, img image.Image, x, y int32) (*window, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	win, err := sdl.CreateWindow(title, x, y, int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	rend, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	// ABGR8888 is the byte order of image.RGBA on little endian hosts
	tex, err := rend.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		rend.Destroy()
		win.Destroy()
		return nil, err
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	pixels, pitch, err := tex.Lock(nil)
	if err != nil {
		tex.Destroy()
		rend.Destroy()
		win.Destroy()
		return nil, err
	}
	for row := 0; row < h; row++ {
		src := rgba.Pix[row*rgba.Stride : row*rgba.Stride+w*4]
		copy(pixels[row*pitch:row*pitch+w*4], src)
	}
	tex.Unlock()

	return &window{win: win, rend: rend, tex: tex}, nil
}
