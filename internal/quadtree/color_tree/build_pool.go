package color_tree

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Counts down the four children of a split node. When the last child
// subtree completes the join completes one unit of its parent, up to the
// root join which closes done.
type subtreeJoin struct {
	pending int32
	parent  *subtreeJoin
	done    chan struct{}
}

func newRootJoin() *subtreeJoin {
	return &subtreeJoin{
		pending: 1,
		done:    make(chan struct{}),
	}
}

func newChildrenJoin(parent *subtreeJoin) *subtreeJoin {
	return &subtreeJoin{
		pending: 4,
		parent:  parent,
	}
}

// marks one unit as resolved, propagating to the ancestors whose count drops to zero
func (j *subtreeJoin) complete() {
	for j != nil {
		if atomic.AddInt32(&j.pending, -1) != 0 {
			return
		}
		if j.done != nil {
			close(j.done)
		}
		j = j.parent
	}
}

// A node waiting to be built and the join its completion must be reported to
type buildTask struct {
	node *ColorNode
	join *subtreeJoin
}

// Fixed set of goroutines building nodes from a shared queue. Workers never
// wait on children: a split node hands its four children to the queue and
// the join counts them down, so no worker can block on work only it could do.
type buildPool struct {
	tree    *ColorTree
	tasks   chan buildTask
	workers sync.WaitGroup

	errOnce  sync.Once
	firstErr error
}

func newBuildPool(tree *ColorTree, numWorkers int) *buildPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	// the queue holds a few splits per worker; overflow is built inline
	return &buildPool{
		tree:  tree,
		tasks: make(chan buildTask, numWorkers*16),
	}
}

// starts the workers
func (p *buildPool) launchParallelBuilders(numWorkers int) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		p.workers.Add(1)
		go p.launchBuilder()
	}
}

func (p *buildPool) launchBuilder() {
	defer p.workers.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

// queues the task, or builds it on the calling goroutine when the queue is full.
// Inline builds nest at most MaxDepth times since each one is a level deeper.
func (p *buildPool) submit(task buildTask) {
	select {
	case p.tasks <- task:
	default:
		p.run(task)
	}
}

// builds one node. A leaf completes its join immediately, a split node
// submits its children and leaves completion to them.
func (p *buildPool) run(task buildTask) {
	submitted := false
	defer func() {
		if r := recover(); r != nil {
			p.fail(fmt.Errorf("building node %v: %v", task.node.GetRegion(), r))
			if !submitted {
				task.join.complete()
			}
		}
	}()

	node := task.node
	if node.shouldStop() {
		node.setLeafFlag()
		p.tree.updateMaxDepth(node.depth)
		task.join.complete()
		return
	}

	node.Split(p.tree.sampler)

	join := newChildrenJoin(task.join)
	submitted = true
	for _, child := range node.children {
		p.submit(buildTask{node: child, join: join})
	}
}

func (p *buildPool) fail(err error) {
	p.errOnce.Do(func() {
		p.firstErr = err
	})
}

// builds the subtree of root and blocks until every node of it is resolved
func (p *buildPool) buildSubtree(root *ColorNode) error {
	join := newRootJoin()
	p.submit(buildTask{node: root, join: join})
	<-join.done
	return p.firstErr
}

// stops the workers once the queue is drained
func (p *buildPool) close() {
	close(p.tasks)
	p.workers.Wait()
}
