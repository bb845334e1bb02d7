// Package maze provides the immutable maze model: construction from a
// character grid, occupancy queries, and orthogonal adjacency.
package maze

import (
	"fmt"
	"strings"
)

// Tile characters understood by New and Parse.
const (
	TileWall  = '#'
	TileOpen  = '.'
	TileStart = 'S'
	TileGoal  = 'E'
)

// Maze is a rectangular grid of wall and open cells with one start and one goal.
// It is immutable once built; walls[row*width+col] holds the wall flag.
type Maze struct {
	width, height int
	walls         []bool
	start, goal   Cell
}

// New constructs a Maze from the rows of a character grid.
// Returns ErrMalformedMaze (wrapping the specific cause) if the grid is empty,
// ragged, contains an unknown tile, or does not hold exactly one start and one goal.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, malformed(ErrEmptyMaze, "%d rows", len(rows))
	}
	h, w := len(rows), len([]rune(rows[0]))
	m := &Maze{width: w, height: h, walls: make([]bool, w*h)}

	var haveStart, haveGoal bool
	for r, line := range rows {
		tiles := []rune(line)
		if len(tiles) != w {
			return nil, malformed(ErrNonRectangular, "row %d has length %d, want %d", r, len(tiles), w)
		}
		for c, t := range tiles {
			cell := Cell{Row: r, Col: c}
			switch t {
			case TileWall:
				m.walls[m.index(cell)] = true
			case TileOpen:
			case TileStart:
				if haveStart {
					return nil, malformed(ErrDuplicateStart, "second start at %s, first at %s", cell, m.start)
				}
				m.start, haveStart = cell, true
			case TileGoal:
				if haveGoal {
					return nil, malformed(ErrDuplicateGoal, "second goal at %s, first at %s", cell, m.goal)
				}
				m.goal, haveGoal = cell, true
			default:
				return nil, malformed(ErrUnknownTile, "%q at %s", t, cell)
			}
		}
	}
	if !haveStart {
		return nil, malformed(ErrMissingStart, "")
	}
	if !haveGoal {
		return nil, malformed(ErrMissingGoal, "")
	}

	return m, nil
}

// Parse splits text into lines and delegates to New. Windows line endings and
// trailing blank lines are tolerated.
func Parse(text string) (*Maze, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return New(nil)
	}
	return New(strings.Split(text, "\n"))
}

// FromCells builds a Maze programmatically from its dimensions, wall cells,
// start and goal. Every cell must lie inside the grid and neither endpoint may be a wall.
// Start and goal may coincide.
func FromCells(width, height int, walls []Cell, start, goal Cell) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, malformed(ErrEmptyMaze, "%dx%d", width, height)
	}
	m := &Maze{width: width, height: height, walls: make([]bool, width*height), start: start, goal: goal}
	for _, c := range walls {
		if !m.InBounds(c) {
			return nil, malformed(ErrOutOfBounds, "wall %s", c)
		}
		m.walls[m.index(c)] = true
	}
	for _, c := range []Cell{start, goal} {
		if !m.InBounds(c) {
			return nil, malformed(ErrOutOfBounds, "endpoint %s", c)
		}
		if m.walls[m.index(c)] {
			return nil, malformed(ErrWallEndpoint, "endpoint %s", c)
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() Cell { return m.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.height && c.Col >= 0 && c.Col < m.width
}

// IsWall reports whether c is blocked. Cells outside the grid are walls.
// Complexity: O(1).
func (m *Maze) IsWall(c Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.walls[m.index(c)]
}

// IsGoal reports whether c is the goal cell.
func (m *Maze) IsGoal(c Cell) bool { return c == m.goal }

// Ahead returns the cell in front of s and whether it is open.
func (m *Maze) Ahead(s State) (Cell, bool) {
	next := s.Cell.Step(s.Heading)
	return next, !m.IsWall(next)
}

// Neighbors returns the open cells orthogonally adjacent to c, each paired with
// the heading faced to reach it, in clockwise heading order starting at North.
// Out-of-bounds and wall cells are omitted.
// Complexity: O(4).
func (m *Maze) Neighbors(c Cell) []Move {
	moves := make([]Move, 0, len(Headings))
	for _, h := range Headings {
		next := c.Step(h)
		if m.IsWall(next) {
			continue
		}
		moves = append(moves, Move{To: next, Heading: h})
	}
	return moves
}

// OpenCells returns the number of non-wall cells.
func (m *Maze) OpenCells() int {
	n := 0
	for _, w := range m.walls {
		if !w {
			n++
		}
	}
	return n
}

// index maps c to its row-major offset: Row*width + Col.
func (m *Maze) index(c Cell) int {
	return c.Row*m.width + c.Col
}

// malformed wraps cause under ErrMalformedMaze with optional detail.
func malformed(cause error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrMalformedMaze, cause)
	}
	return fmt.Errorf("%w: %w: %s", ErrMalformedMaze, cause, fmt.Sprintf(format, args...))
}
