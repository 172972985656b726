package maze

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-solver/animation"
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Root     CellPosition       // Cell the tree grows from and solvers start at
	Seed     int64              // Seed for the random walks; equal seeds give equal mazes
	Recorder animation.Recorder // Optional sink for generate events
}

// Generate carves a perfect maze of the given dimensions with Wilson's algorithm.
// Every cell ends up reachable from the root through exactly one path.
func Generate(width, height int, opts GenerateOptions) (*Tree, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	tree, err := NewTree(grid, opts.Root)
	if err != nil {
		return nil, err
	}

	w := &wilson{
		grid:    grid,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		rec:     opts.Recorder,
		visited: make(map[*Cell]struct{}, grid.Size()),
	}
	w.activate(tree.Root)

	for len(w.visited) < grid.Size() {
		if err := w.carve(w.randomWalk()); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

type wilson struct {
	grid    *Grid
	rng     *rand.Rand
	rec     animation.Recorder
	visited map[*Cell]struct{}
}

// randomUnvisitedCell picks a cell that is not yet part of the tree.
func (w *wilson) randomUnvisitedCell() *Cell {
	var candidates []*Cell
	for _, c := range w.grid.Cells() {
		if _, included := w.visited[c]; !included {
			candidates = append(candidates, c)
		}
	}
	return candidates[w.rng.Intn(len(candidates))]
}

// randomWalk wanders from an unvisited cell until it hits the tree and returns
// the loop-erased path, ending with the cell adjacent to the tree.
// next records the last exit taken from each cell, which erases loops.
func (w *wilson) randomWalk() (path []*Cell, next map[*Cell]*Cell) {
	start := w.randomUnvisitedCell()
	next = make(map[*Cell]*Cell)
	cell := start

	for {
		if _, included := w.visited[cell]; included {
			break
		}
		neighbors := w.grid.Neighbors(cell)
		randomNeighbor := neighbors[w.rng.Intn(len(neighbors))]
		next[cell] = randomNeighbor
		cell = randomNeighbor
	}

	for cell = start; ; cell = next[cell] {
		if _, included := w.visited[cell]; included {
			break
		}
		path = append(path, cell)
	}

	return path, next
}

// carve links the walk into the tree, starting from the end that touches it.
func (w *wilson) carve(path []*Cell, next map[*Cell]*Cell) error {
	for i := len(path) - 1; i >= 0; i-- {
		child := path[i]
		parent := next[child]
		if err := w.grid.Link(parent, child); err != nil {
			return err
		}
		w.activate(child)
		if w.rec != nil {
			w.rec.Record(animation.PhaseGenerate, animation.KindLink, animation.Payload{
				"parent": parent.Coords().Pair(),
				"child":  child.Coords().Pair(),
			})
		}
	}
	return nil
}

func (w *wilson) activate(c *Cell) {
	w.visited[c] = struct{}{}
	if w.rec != nil {
		w.rec.Record(animation.PhaseGenerate, animation.KindActivate, animation.Payload{
			"cell": c.Coords().Pair(),
		})
	}
}
