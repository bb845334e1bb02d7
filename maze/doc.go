// Package maze models a rectangular maze of wall and open cells with one
// start cell and one goal cell, as consumed by the direction-aware search in
// package dijkstra.
//
// What:
//
//   - Maze wraps a row-major grid of wall flags plus the distinguished Start and Goal cells.
//   - Cell is a (Row, Col) grid position; Heading is one of North, East, South, West.
//   - State pairs a Cell with a Heading and is the unit over which the search runs.
//   - Move pairs an orthogonal neighbor with the Heading faced to reach it.
//
// Why:
//
//   - Traversal cost in a reindeer-style maze depends on facing direction, so the
//     search space is the product of cells and headings, not cells alone.
//   - Keeping the grid immutable lets any number of searches share one Maze.
//
// Tiles:
//
//	#  wall
//	.  open
//	S  start (open, exactly one)
//	E  goal  (open, exactly one)
//
// Bounds:
//
//   - Any cell outside the grid reports IsWall == true, so Neighbors and Ahead never
//     hand out-of-bounds cells to callers.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - IsWall, IsGoal, InBounds, Ahead: O(1).
//   - Neighbors: O(4).
//   - Render / String: O(W×H).
//
// Errors:
//
//   - ErrMalformedMaze wraps every construction failure; the specific cause is also
//     wrapped (ErrEmptyMaze, ErrNonRectangular, ErrMissingStart, ErrDuplicateStart,
//     ErrMissingGoal, ErrDuplicateGoal, ErrUnknownTile, ErrOutOfBounds, ErrWallEndpoint).
package maze
