package io

import (
	"sync"

	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
)

type StandardProducer struct {
	borders bool
}

func NewStandardProducer(borders bool) *StandardProducer {
	return &StandardProducer{
		borders: borders,
	}
}

// Submits one WorkUnit per tree level, from the root down to the deepest leaf found during the build.
// Closes the channel when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, tree quadtree.ITree) {
	for depth := 0; depth <= tree.MaxDepth(); depth++ {
		work <- &WorkUnit{
			Depth:   depth,
			Index:   depth,
			Borders: p.borders,
		}
	}
	close(work)
	wg.Done()
}

// Number of frames Produce submits for the given tree
func FrameCount(tree quadtree.ITree) int {
	return tree.MaxDepth() + 1
}
