package dijkstra

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
)

// collectTiles walks the predecessor sets backwards from every goal state found at
// the minimum cost and returns the cells of all visited states.
//
// The walk is an iterative DFS over states. Zero-cost transitions can form
// predecessor cycles, so each state is pushed at most once.
func (r *runner) collectTiles() mapset.Set[maze.Cell] {
	tiles := mapset.New[maze.Cell]()
	seen := mapset.New[maze.State]()
	stack := make([]maze.State, 0, len(r.goals))

	for _, g := range r.goals {
		if !seen.Has(g) {
			seen.Put(g)
			stack = append(stack, g)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tiles.Put(s.Cell)

		for _, p := range r.prev[s] {
			if seen.Has(p) {
				continue
			}
			seen.Put(p)
			stack = append(stack, p)
		}
	}

	return tiles
}
