package io

import (
	"fmt"
	"image"
	"sync"

	"github.com/golang/glog"

	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
	"github.com/ecopia-map/quadtree_compressor/internal/render"
)

// FrameSet holds the rendered frames by index. Every slot is written by a single consumer and read only after
// all consumers are done.
type FrameSet struct {
	frames []*image.RGBA
}

func NewFrameSet(size int) *FrameSet {
	return &FrameSet{
		frames: make([]*image.RGBA, size),
	}
}

func (s *FrameSet) set(index int, frame *image.RGBA) error {
	if index < 0 || index >= len(s.frames) {
		return fmt.Errorf("frame index %d out of range [0, %d)", index, len(s.frames))
	}
	s.frames[index] = frame
	return nil
}

func (s *FrameSet) Frames() []*image.RGBA {
	return s.frames
}

type StandardConsumer struct {
	tree     quadtree.ITree
	renderer render.Renderer
	frames   *FrameSet
}

func NewStandardConsumer(tree quadtree.ITree, renderer render.Renderer, frames *FrameSet) *StandardConsumer {
	return &StandardConsumer{
		tree:     tree,
		renderer: renderer,
		frames:   frames,
	}
}

// Continually consumes WorkUnits submitted to a work channel rendering the corresponding frames.
// Continues working until work channel is closed or if an error is raised. In this last case submits the error
// to an error channel and drains the remaining work so that the producer is never blocked.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	for work := range workchan {
		if err := c.doWork(work); err != nil {
			errchan <- err
			glog.Errorf("frame consumer stopped at depth %d: %v", work.Depth, err)
			for range workchan {
			}
			return
		}
	}
}

// Takes a workunit and renders the leaves of its level
func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	leaves, err := c.tree.GetLeaves(workUnit.Depth)
	if err != nil {
		return err
	}

	frame := c.renderer.Render(leaves, c.tree.Width(), c.tree.Height(), workUnit.Borders)
	glog.V(2).Infof("frame rendered. depth:[%d] leaves:[%d]", workUnit.Depth, len(leaves))

	return c.frames.set(workUnit.Index, frame)
}
