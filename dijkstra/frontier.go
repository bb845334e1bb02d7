package dijkstra

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/mazepath/maze"
)

// entry is a state and the cost it was discovered with.
type entry struct {
	state maze.State
	cost  int64
}

// frontier is a min-heap of entries ordered by cost. Ties pop in arbitrary order;
// that order never changes the minimum, only which optimal path is met first.
type frontier struct {
	h *heap.Heap[entry]
}

func newFrontier() *frontier {
	return &frontier{h: heap.New[entry](func(a, b entry) bool { return a.cost < b.cost })}
}

func (f *frontier) push(s maze.State, cost int64) {
	f.h.Push(entry{state: s, cost: cost})
}

// pop removes the cheapest entry. ok is false when the frontier is empty.
func (f *frontier) pop() (s maze.State, cost int64, ok bool) {
	e, ok := f.h.Pop()
	return e.state, e.cost, ok
}

func (f *frontier) len() int { return f.h.Size() }
