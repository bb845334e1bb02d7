package maze

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// MarkOptimal is the conventional rune for cells lying on an optimal path.
const MarkOptimal = 'O'

// String renders the maze back into its character grid, one row per line.
func (m *Maze) String() string {
	return m.Render(mapset.New[Cell](), MarkOptimal)
}

// Render draws the maze with every open cell in marks replaced by mark.
// Start and goal keep their own tiles; marked walls and out-of-bounds cells are ignored.
// Complexity: O(W×H).
func (m *Maze) Render(marks mapset.Set[Cell], mark rune) string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			cell := Cell{Row: r, Col: c}
			switch {
			case m.walls[m.index(cell)]:
				sb.WriteRune(TileWall)
			case cell == m.start:
				sb.WriteRune(TileStart)
			case cell == m.goal:
				sb.WriteRune(TileGoal)
			case marks.Has(cell):
				sb.WriteRune(mark)
			default:
				sb.WriteRune(TileOpen)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
