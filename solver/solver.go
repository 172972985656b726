// Package solver finds paths through generated mazes.
//
// Solvers walk a maze.Tree from its root to a target cell, returning the
// path and the cells they settled along the way. When a recorder is supplied
// each step is reported to it so the solve can be animated.
package solver

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/beka-birhanu/vinom-solver/animation"
	"github.com/beka-birhanu/vinom-solver/maze"
)

var (
	ErrUnknownSolver = errors.New("unknown solver")
)

// Solver is a maze search strategy.
type Solver interface {
	// Name returns the registry name of the solver.
	Name() string

	// Solve searches tree for target. rec may be nil.
	Solve(tree *maze.Tree, target maze.CellPosition, rec animation.Recorder) (*Result, error)
}

// Result is the outcome of a solve.
type Result struct {
	Solver   string       // Name of the solver that produced the result
	Path     []*maze.Cell // Root to target inclusive, empty when unreachable
	Explored []*maze.Cell // Cells in the order they were settled
}

// Found reports whether a path to the target exists.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}

// PathCoords returns the path as positions.
func (r *Result) PathCoords() []maze.CellPosition {
	return coords(r.Path)
}

// ExploredCoords returns the explored cells as positions.
func (r *Result) ExploredCoords() []maze.CellPosition {
	return coords(r.Explored)
}

func coords(cells []*maze.Cell) []maze.CellPosition {
	out := make([]maze.CellPosition, len(cells))
	for i, c := range cells {
		out[i] = c.Coords()
	}
	return out
}

// buildPath walks parent links back from target and returns root..target.
// It returns nil if target was never discovered.
func buildPath(parents map[*maze.Cell]*maze.Cell, target *maze.Cell) []*maze.Cell {
	if _, discovered := parents[target]; !discovered {
		return nil
	}

	var path []*maze.Cell
	for cell := target; cell != nil; cell = parents[cell] {
		path = append(path, cell)
	}
	slices.Reverse(path)
	return path
}

// pairs converts cells into [row, col] pairs for animation payloads.
func pairs(cells []*maze.Cell) [][]int {
	out := make([][]int, len(cells))
	for i, c := range cells {
		out[i] = c.Coords().Pair()
	}
	return out
}

var registry = map[string]Solver{}

func register(s Solver) {
	registry[s.Name()] = s
}

// Lookup returns the solver registered under name.
func Lookup(name string) (Solver, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
	return s, nil
}

// Names lists the registered solvers in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
