package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

const inf = math.MaxInt64 / 4

// oracle holds exact forward and backward costs computed by plain fixpoint
// iteration over every (open cell, heading) state. It is slow and independent
// of the heap-based search.
type oracle struct {
	fwd, bwd map[maze.State]int64
	min      int64
}

type arc struct {
	to maze.State
	w  int64
}

func successors(m *maze.Maze, s maze.State, step, turn int64) []arc {
	out := []arc{
		{maze.State{Cell: s.Cell, Heading: s.Heading.TurnLeft()}, turn},
		{maze.State{Cell: s.Cell, Heading: s.Heading.TurnRight()}, turn},
	}
	if next, open := m.Ahead(s); open {
		out = append(out, arc{maze.State{Cell: next, Heading: s.Heading}, step})
	}
	return out
}

func newOracle(m *maze.Maze, h maze.Heading, step, turn int64) oracle {
	var states []maze.State
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			if m.IsWall(cell) {
				continue
			}
			for _, hd := range maze.Headings {
				states = append(states, maze.State{Cell: cell, Heading: hd})
			}
		}
	}

	o := oracle{fwd: map[maze.State]int64{}, bwd: map[maze.State]int64{}, min: inf}
	for _, s := range states {
		o.fwd[s], o.bwd[s] = inf, inf
		if m.IsGoal(s.Cell) {
			o.bwd[s] = 0
		}
	}
	o.fwd[maze.State{Cell: m.Start(), Heading: h}] = 0

	for changed := true; changed; {
		changed = false
		for _, s := range states {
			for _, a := range successors(m, s, step, turn) {
				if o.fwd[s] < inf && o.fwd[s]+a.w < o.fwd[a.to] {
					o.fwd[a.to] = o.fwd[s] + a.w
					changed = true
				}
				if o.bwd[a.to] < inf && a.w+o.bwd[a.to] < o.bwd[s] {
					o.bwd[s] = a.w + o.bwd[a.to]
					changed = true
				}
			}
		}
	}

	for _, s := range states {
		if m.IsGoal(s.Cell) && o.fwd[s] < o.min {
			o.min = o.fwd[s]
		}
	}
	return o
}

// optimalCells lists cells with some heading whose forward plus backward cost is the minimum.
func (o oracle) optimalCells() map[maze.Cell]bool {
	out := map[maze.Cell]bool{}
	for s, f := range o.fwd {
		if f < inf && o.bwd[s] < inf && f+o.bwd[s] == o.min {
			out[s.Cell] = true
		}
	}
	return out
}

// randomMaze draws a bordered maze with the given wall density.
func randomMaze(t *testing.T, rng *rand.Rand, w, h int, density float64) *maze.Maze {
	t.Helper()
	start := maze.Cell{Row: h - 2, Col: 1}
	goal := maze.Cell{Row: 1, Col: w - 2}
	var walls []maze.Cell
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cell := maze.Cell{Row: r, Col: c}
			border := r == 0 || c == 0 || r == h-1 || c == w-1
			if cell == start || cell == goal {
				continue
			}
			if border || rng.Float64() < density {
				walls = append(walls, cell)
			}
		}
	}
	m, err := maze.FromCells(w, h, walls, start, goal)
	require.NoError(t, err)
	return m
}

type propertyCase struct {
	name       string
	m          *maze.Maze
	heading    maze.Heading
	step, turn int64
}

func propertyCases(t *testing.T) []propertyCase {
	rng := rand.New(rand.NewSource(16))
	cases := []propertyCase{
		{"ReferenceSmall", mustMaze(t, referenceSmall...), maze.East, 1, 1000},
		{"ReferenceLarge", mustMaze(t, referenceLarge...), maze.East, 1, 1000},
		{"ReferenceSmallNorth", mustMaze(t, referenceSmall...), maze.North, 1, 1000},
		{"FreeTurns", mustMaze(t, "#######", "#.....#", "#S###E#", "#.....#", "#######"), maze.East, 1, 0},
		{"CheapTurns", mustMaze(t, referenceLarge...), maze.South, 3, 2},
	}
	for i := 0; i < 12; i++ {
		cases = append(cases, propertyCase{
			name:    fmt.Sprintf("Random%02d", i),
			m:       randomMaze(t, rng, 9+i%3, 7+i%4, 0.25),
			heading: maze.Headings[i%4],
			step:    1,
			turn:    []int64{1000, 1, 0, 7}[i%4],
		})
	}
	return cases
}

// TestProperties_AgainstOracle checks the minimum, the exact tile set, the
// Manhattan lower bound and per-state cost monotonicity.
func TestProperties_AgainstOracle(t *testing.T) {
	for _, tc := range propertyCases(t) {
		t.Run(tc.name, func(t *testing.T) {
			opts := []dijkstra.Option{
				quiet,
				dijkstra.WithHeading(tc.heading),
				dijkstra.WithStepCost(tc.step),
				dijkstra.WithTurnCost(tc.turn),
			}
			want := newOracle(tc.m, tc.heading, tc.step, tc.turn)

			cost, err := dijkstra.MinimumCost(tc.m, opts...)
			res, serr := dijkstra.Search(tc.m, opts...)
			if want.min == inf {
				assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
				assert.ErrorIs(t, serr, dijkstra.ErrUnreachable)
				return
			}
			require.NoError(t, err)
			require.NoError(t, serr)

			// Both operations agree with each other and with the oracle.
			assert.Equal(t, want.min, cost)
			assert.Equal(t, cost, res.Cost)

			// Every forward step costs step, so the Manhattan distance bounds the cost.
			bound := int64(tc.m.Start().Manhattan(tc.m.Goal())) * tc.step
			assert.GreaterOrEqual(t, cost, bound)

			// Tiles are exactly the cells on some optimal path.
			expect := want.optimalCells()
			assert.Equal(t, len(expect), res.TileCount())
			res.Tiles.Each(func(c maze.Cell) {
				assert.True(t, expect[c], "unexpected tile %s", c)
			})
			assert.True(t, res.Tiles.Has(tc.m.Start()))
			assert.True(t, res.Tiles.Has(tc.m.Goal()))

			// Finalized costs match the oracle and never decrease along a predecessor edge.
			for _, g := range res.Goals {
				assert.Equal(t, cost, want.fwd[g])
			}
			for s, f := range want.fwd {
				got, ok := res.CostOf(s)
				if !ok {
					assert.True(t, f > cost, "%s at %d not finalized", s, f)
					continue
				}
				assert.Equal(t, f, got, "%s", s)
				for _, p := range res.Predecessors(s) {
					pc, ok := res.CostOf(p)
					require.True(t, ok)
					assert.LessOrEqual(t, pc, got)
				}
			}
		})
	}
}

// TestProperties_PathSuperset: at least as many tiles as cells on any single optimal path.
func TestProperties_PathSuperset(t *testing.T) {
	for _, tc := range propertyCases(t) {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.Search(tc.m, quiet,
				dijkstra.WithHeading(tc.heading),
				dijkstra.WithStepCost(tc.step),
				dijkstra.WithTurnCost(tc.turn))
			if err != nil {
				require.ErrorIs(t, err, dijkstra.ErrUnreachable)
				return
			}
			onPath := map[maze.Cell]bool{}
			for _, s := range res.Path() {
				onPath[s.Cell] = true
				assert.True(t, res.Tiles.Has(s.Cell))
			}
			assert.GreaterOrEqual(t, res.TileCount(), len(onPath))
		})
	}
}
