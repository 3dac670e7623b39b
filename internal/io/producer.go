package io

import (
	"sync"

	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
)

type Producer interface {
	Produce(work chan *WorkUnit, wg *sync.WaitGroup, tree quadtree.ITree)
}

type Consumer interface {
	Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup)
}
