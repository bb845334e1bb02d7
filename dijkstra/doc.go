// Package dijkstra provides an exact uniform-cost search over the (cell, heading)
// state space of a maze.Maze, where moving forward and turning in place carry
// different costs.
//
// Overview:
//
//   - A state is a (Cell, Heading) pair. From every state exactly three transitions exist:
//     turn left in place (TurnCost), turn right in place (TurnCost), and step forward
//     (StepCost) when the cell ahead is open.
//   - Defaults are StepCost = 1 and TurnCost = 1000, starting at the maze start facing East.
//   - The goal predicate is positional: any heading at the goal cell is accepted.
//
// Entry points:
//
//   - MinimumCost: the cheapest total cost to reach the goal. Stops on the first goal pop.
//   - TilesOnOptimalPaths: every cell lying on at least one minimum-cost path.
//   - Search: the exhaustive run behind TilesOnOptimalPaths, returned as a *Result with
//     costs, predecessor sets, goal states and one reconstructed path.
//   - Solve: MinimumCost first, then Search pruned with that bound via WithMaxCost.
//
// All entry points share one relaxation core. A state's best known cost is replaced only
// by a strictly smaller candidate; doing so clears its predecessor set. A candidate equal
// to the best known cost appends its source to the predecessor set, which keeps the whole
// fan of optimal predecessors. The tile set is the reverse reachability closure over those
// sets from every goal state at the minimum cost, guarded by a visited set of states.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4 × open cells (each state pops once; three transitions each).
//   - Space: O(S) for costs, predecessor sets and the lazy frontier.
//
// Options:
//
//   - WithHeading(h):      initial heading (default maze.East).
//   - WithStepCost(c):     forward cost, c ≥ 0 (default 1).
//   - WithTurnCost(c):     in-place rotation cost, c ≥ 0 (default 1000).
//   - WithMaxCost(c):      candidates costlier than c are dropped, c ≥ 0.
//   - WithLogger(l):       logrus.FieldLogger for Debug-level search summaries.
//   - WithOnFinalize(fn):  hook called once for each state as its cost becomes final.
//
// Errors (sentinel):
//
//   - ErrNilMaze          the maze pointer is nil.
//   - ErrOptionViolation  an option received an invalid value.
//   - ErrUnreachable      the frontier emptied before any goal state was finalized.
//
// Thread safety:
//
//   - Every call owns its frontier and tables. A *maze.Maze is read-only, so concurrent
//     searches over the same maze are safe.
package dijkstra
