// Package maze defines the cell, heading and state types shared by the
// maze model and the search engine.
package maze

import "fmt"

// Heading is one of the four cardinal facing directions.
// Values are ordered clockwise starting at North.
type Heading int

const (
	// North faces towards decreasing Row.
	North Heading = iota
	// East faces towards increasing Col.
	East
	// South faces towards increasing Row.
	South
	// West faces towards decreasing Col.
	West
)

// Headings lists all four headings in clockwise order.
var Headings = [4]Heading{North, East, South, West}

// headingOffsets holds the (dRow, dCol) unit step for each heading.
var headingOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

var headingNames = [4]string{"North", "East", "South", "West"}

// TurnRight returns the heading after a 90° clockwise rotation.
func (h Heading) TurnRight() Heading { return (h + 1) % 4 }

// TurnLeft returns the heading after a 90° counter-clockwise rotation.
func (h Heading) TurnLeft() Heading { return (h + 3) % 4 }

// Offset returns the unit (dRow, dCol) step taken when moving forward.
func (h Heading) Offset() (dRow, dCol int) {
	o := headingOffsets[h%4]
	return o[0], o[1]
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h >= North && h <= West }

// String implements fmt.Stringer.
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

// Cell is a grid position. Row grows downwards, Col grows rightwards.
// Cells compare by value and are used directly as map keys.
type Cell struct {
	Row, Col int
}

// Step returns the cell one unit away in direction h.
func (c Cell) Step(h Heading) Cell {
	dr, dc := h.Offset()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns |ΔRow| + |ΔCol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String implements fmt.Stringer.
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// State is a (Cell, Heading) pair. Two visits to the same Cell with different
// Headings are distinct states and may have different optimal costs.
type State struct {
	Cell    Cell
	Heading Heading
}

// String implements fmt.Stringer.
func (s State) String() string { return fmt.Sprintf("%s/%s", s.Cell, s.Heading) }

// Move is an orthogonal neighbor together with the heading faced to reach it.
type Move struct {
	To      Cell
	Heading Heading
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
