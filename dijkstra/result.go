package dijkstra

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
)

// Result is the outcome of an exhaustive Search.
//
// Cost     – minimum total cost from Start to the goal cell.
// Start    – initial state (maze start with the configured heading).
// Goals    – goal states finalized at Cost, ordered by heading.
// Tiles    – cells lying on at least one minimum-cost path.
// Expanded – number of states finalized by the search.
type Result struct {
	Cost     int64
	Start    maze.State
	Goals    []maze.State
	Tiles    mapset.Set[maze.Cell]
	Expanded int

	dist map[maze.State]int64
	prev map[maze.State][]maze.State
	done map[maze.State]bool
}

// CostOf reports the final cost of s. ok is false for states that were never
// finalized, either unreachable or costlier than the goal.
func (r *Result) CostOf(s maze.State) (cost int64, ok bool) {
	if !r.done[s] {
		return 0, false
	}
	return r.dist[s], true
}

// Predecessors returns a copy of the states from which s is reached at its final cost.
// Unfinalized states have none; the initial state has none unless zero-cost
// transitions lead back to it.
func (r *Result) Predecessors(s maze.State) []maze.State {
	if !r.done[s] {
		return nil
	}
	return slices.Clone(r.prev[s])
}

// Path returns one minimum-cost state sequence from Start to Goals[0],
// following the first recorded predecessor of every state.
func (r *Result) Path() []maze.State {
	if len(r.Goals) == 0 {
		return nil
	}

	path := []maze.State{r.Goals[0]}
	for cur := r.Goals[0]; cur != r.Start; {
		ps := r.prev[cur]
		if len(ps) == 0 {
			// unreachable for a consistent Result
			return nil
		}
		cur = ps[0]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// TileCount returns the number of cells on optimal paths.
func (r *Result) TileCount() int {
	return r.Tiles.Size()
}
