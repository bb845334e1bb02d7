// Package dijkstra defines options, sentinel errors and the result type of
// the direction-aware maze search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors returned by the search.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed.
	ErrNilMaze = errors.New("dijkstra: maze is nil")

	// ErrUnreachable indicates that no goal state can be reached from the initial state
	// (within MaxCost, if set). It is distinct from a zero-cost result.
	ErrUnreachable = errors.New("dijkstra: goal is unreachable")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Default transition costs.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Options configures the search.
//
// Heading    – heading of the initial state at the maze start.
// StepCost   – cost of moving one cell forward. Must be ≥ 0.
// TurnCost   – cost of a 90° rotation in place. Must be ≥ 0.
// MaxCost    – candidates with a total cost above this bound are dropped. Must be ≥ 0.
//
//	Default is math.MaxInt64 (no bound).
//
// Logger     – receives one Debug entry per search.
// OnFinalize – called once per state when its cost becomes final.
type Options struct {
	Heading    maze.Heading
	StepCost   int64
	TurnCost   int64
	MaxCost    int64
	Logger     logrus.FieldLogger
	OnFinalize func(s maze.State, cost int64)

	// first invalid option, surfaced as ErrOptionViolation before any work
	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Heading:    maze.East
//   - StepCost:   1
//   - TurnCost:   1000
//   - MaxCost:    math.MaxInt64 (no bound)
//   - Logger:     logrus.StandardLogger()
//   - OnFinalize: no-op
func DefaultOptions() Options {
	return Options{
		Heading:    maze.East,
		StepCost:   DefaultStepCost,
		TurnCost:   DefaultTurnCost,
		MaxCost:    math.MaxInt64,
		Logger:     logrus.StandardLogger(),
		OnFinalize: func(maze.State, int64) {},
	}
}

// WithHeading sets the heading of the initial state.
func WithHeading(h maze.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.fail("heading %d is not a cardinal heading", int(h))
			return
		}
		o.Heading = h
	}
}

// WithStepCost sets the cost of one forward step.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail("StepCost cannot be negative (%d)", c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of one 90° rotation in place.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail("TurnCost cannot be negative (%d)", c)
			return
		}
		o.TurnCost = c
	}
}

// WithMaxCost drops every candidate whose total cost exceeds c. Passing the value
// returned by MinimumCost prunes an exhaustive Search to optimal states only.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail("MaxCost cannot be negative (%d)", c)
			return
		}
		o.MaxCost = c
	}
}

// WithLogger routes search summaries to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFinalize registers fn to run once for each finalized state.
func WithOnFinalize(fn func(s maze.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// fail records the first option violation.
func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}
