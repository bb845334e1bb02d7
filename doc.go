// Package mazepath finds the cheapest routes through a walled grid maze for a
// walker that cares which way it is facing.
//
// What is mazepath?
//
//	A small, dependency-light library built from two packages:
//		• maze:     parse and validate a grid of '#', '.', 'S' and 'E' tiles,
//		            answer wall/bounds/neighbor queries and render marked cells
//		• dijkstra: uniform-cost search over (cell, heading) states where a step
//		            forward costs 1 and a quarter turn in place costs 1000
//
// Two questions are answered:
//
//   - MinimumCost: the cheapest total cost from the start tile, facing East,
//     to the goal tile in any heading.
//   - TilesOnOptimalPaths: every tile lying on at least one route of that cost.
//
// Quick ASCII example:
//
//	#######
//	#OOOOO#      S faces a wall, so both detours need three turns:
//	#S###E#      cost 3006 either way, 12 tiles on optimal paths.
//	#OOOOO#
//	#######
//
// Getting started:
//
//	m, err := maze.Parse(input)
//	if err != nil { … }                        // errors.Is(err, maze.ErrMalformedMaze)
//	cost, err := dijkstra.MinimumCost(m)      // errors.Is(err, dijkstra.ErrUnreachable)
//	tiles, err := dijkstra.TilesOnOptimalPaths(m)
//	fmt.Print(m.Render(tiles, maze.MarkOptimal))
//
// See examples/ for a runnable program.
package mazepath
