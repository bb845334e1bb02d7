// Package dijkstra implements uniform-cost search over (cell, heading) states.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: an improved state is pushed again and
//     stale entries are skipped when popped, because the state is already finalized.
//   - Predecessor sets are plain slices keyed by state; a source state relaxes each
//     successor at most once, so a slice never holds duplicates.
//   - We never add MaxCost-violating candidates, and we compare against the remaining
//     budget (MaxCost - cost) so the sum cannot overflow.
package dijkstra

import (
	"math"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
)

// MinimumCost returns the cheapest total cost from the maze start, facing the
// configured heading (East by default), to any state at the goal cell.
// The search stops as soon as the first goal state is popped from the frontier.
//
// Returns ErrNilMaze, ErrOptionViolation, or ErrUnreachable.
//
// Complexity: O(S log S) time, O(S) memory, S = 4 × open cells.
func MinimumCost(m *maze.Maze, opts ...Option) (int64, error) {
	r, err := newRunner(m, modeFirstGoal, opts)
	if err != nil {
		return 0, err
	}
	if err = r.run(); err != nil {
		return 0, err
	}

	return r.best, nil
}

// TilesOnOptimalPaths returns the union of cells visited by every path whose
// cost equals the minimum. The start cell and the goal cell are always members.
//
// Returns ErrNilMaze, ErrOptionViolation, or ErrUnreachable.
func TilesOnOptimalPaths(m *maze.Maze, opts ...Option) (mapset.Set[maze.Cell], error) {
	res, err := Search(m, opts...)
	if err != nil {
		return mapset.Set[maze.Cell]{}, err
	}

	return res.Tiles, nil
}

// Search runs the exhaustive variant: it finalizes every state whose cost does
// not exceed the best goal cost, keeping all tying predecessors, and then
// collects the tiles of all optimal paths.
func Search(m *maze.Maze, opts ...Option) (*Result, error) {
	r, err := newRunner(m, modeAllOptimal, opts)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// Solve computes the minimum cost first and reuses it as the MaxCost bound of the
// exhaustive Search, so the second pass never pushes a state costlier than the answer.
// OnFinalize hooks observe both passes.
func Solve(m *maze.Maze, opts ...Option) (*Result, error) {
	cost, err := MinimumCost(m, opts...)
	if err != nil {
		return nil, err
	}
	bounded := append(slices.Clip(opts), WithMaxCost(cost))

	return Search(m, bounded...)
}

// mode selects when the main loop stops.
type mode int

const (
	// modeFirstGoal stops on the first goal state popped.
	modeFirstGoal mode = iota
	// modeAllOptimal finalizes every state up to the best goal cost.
	modeAllOptimal
)

func (md mode) String() string {
	if md == modeFirstGoal {
		return "first-goal"
	}
	return "all-optimal"
}

// runner holds the mutable state for a single search.
type runner struct {
	m       *maze.Maze                  // read-only input
	opts    Options                     // validated configuration
	mode    mode                        // stop condition
	initial maze.State                  // start cell with the configured heading
	dist    map[maze.State]int64        // best known cost per discovered state
	prev    map[maze.State][]maze.State // all predecessors achieving dist
	done    map[maze.State]bool         // finalized states
	pq      *frontier                   // lazy min-heap of (state, cost)

	best     int64        // cost of the first finalized goal state
	goals    []maze.State // finalized goal states at cost best
	expanded int          // number of finalized states
}

// newRunner validates inputs and options and seeds the frontier with the initial state.
func newRunner(m *maze.Maze, md mode, opts []Option) (*runner, error) {
	// 1) Validate maze
	if m == nil {
		return nil, ErrNilMaze
	}

	// 2) Apply options and surface the first violation
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Allocate tables sized for every (open cell, heading) pair
	capacity := 4 * m.OpenCells()
	r := &runner{
		m:       m,
		opts:    cfg,
		mode:    md,
		initial: maze.State{Cell: m.Start(), Heading: cfg.Heading},
		dist:    make(map[maze.State]int64, capacity),
		prev:    make(map[maze.State][]maze.State, capacity),
		done:    make(map[maze.State]bool, capacity),
		pq:      newFrontier(),
		best:    math.MaxInt64,
	}

	// 4) The initial state costs nothing and has no predecessor
	r.dist[r.initial] = 0
	r.pq.push(r.initial, 0)

	return r, nil
}

// run drives the main loop and logs a summary.
func (r *runner) run() error {
	r.process()

	log := r.opts.Logger.WithFields(logrus.Fields{
		"start":    r.initial.Cell.String(),
		"heading":  r.initial.Heading.String(),
		"mode":     r.mode.String(),
		"expanded": r.expanded,
		"pending":  r.pq.len(),
	})
	if len(r.goals) == 0 {
		log.Debug("dijkstra: goal unreachable")
		return ErrUnreachable
	}
	log.WithFields(logrus.Fields{
		"cost":  r.best,
		"goals": len(r.goals),
	}).Debug("dijkstra: search finished")

	return nil
}

// process pops states in cost order until the stop condition of the mode holds
// or the frontier is exhausted.
func (r *runner) process() {
	for {
		// 1) Pop the cheapest entry; an empty frontier ends the search.
		s, d, ok := r.pq.pop()
		if !ok {
			return
		}

		// 2) Skip stale entries of states already finalized at a lower or equal cost.
		if r.done[s] {
			continue
		}

		// 3) Past the best goal cost nothing can lie on an optimal path.
		if d > r.best {
			return
		}

		// 4) Finalize s.
		r.done[s] = true
		r.expanded++
		r.opts.OnFinalize(s, d)

		// 5) Goal check. The first goal popped carries the minimum cost.
		if r.m.IsGoal(s.Cell) {
			if r.goals == nil {
				r.best = d
			}
			r.goals = append(r.goals, s)
			if r.mode == modeFirstGoal {
				return
			}
		}

		// 6) Relax the three transitions out of s.
		r.relax(s, d)
	}
}

// relax offers every successor of u (finalized at cost d) a candidate cost.
// A strictly smaller candidate replaces the best cost and resets the predecessor
// set to {u}; an equal candidate appends u to it; a larger one is ignored.
func (r *runner) relax(u maze.State, d int64) {
	turn := r.opts.TurnCost
	r.offer(u, maze.State{Cell: u.Cell, Heading: u.Heading.TurnLeft()}, d, turn)
	r.offer(u, maze.State{Cell: u.Cell, Heading: u.Heading.TurnRight()}, d, turn)
	if next, open := r.m.Ahead(u); open {
		r.offer(u, maze.State{Cell: next, Heading: u.Heading}, d, r.opts.StepCost)
	}
}

// offer relaxes the single transition u → v of weight w.
func (r *runner) offer(u, v maze.State, d, w int64) {
	// Respect MaxCost without computing an overflowing sum.
	if w > r.opts.MaxCost-d {
		return
	}
	nd := d + w

	cur, seen := r.dist[v]
	switch {
	case !seen || nd < cur:
		r.dist[v] = nd
		r.prev[v] = append(r.prev[v][:0], u)
		r.pq.push(v, nd)
	case nd == cur:
		r.prev[v] = append(r.prev[v], u)
	}
}

// result packages the finalized tables into a Result.
func (r *runner) result() *Result {
	goals := slices.Clone(r.goals)
	slices.SortFunc(goals, func(a, b maze.State) int { return int(a.Heading) - int(b.Heading) })

	return &Result{
		Cost:     r.best,
		Start:    r.initial,
		Goals:    goals,
		Tiles:    r.collectTiles(),
		Expanded: r.expanded,
		dist:     r.dist,
		prev:     r.prev,
		done:     r.done,
	}
}
