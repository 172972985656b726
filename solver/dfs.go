package solver

import (
	"github.com/beka-birhanu/vinom-solver/animation"
	"github.com/beka-birhanu/vinom-solver/maze"
)

// DFSName is the registry name of DepthFirst.
const DFSName = "dfs"

func init() {
	register(DepthFirst{})
}

// DepthFirst searches the maze with an explicit stack.
type DepthFirst struct{}

// Name implements Solver.
func (DepthFirst) Name() string {
	return DFSName
}

// Solve implements Solver.
func (d DepthFirst) Solve(tree *maze.Tree, target maze.CellPosition, rec animation.Recorder) (*Result, error) {
	path, explored, err := d.Traverse(tree, target, rec)
	if err != nil {
		return nil, err
	}
	return &Result{Solver: DFSName, Path: path, Explored: explored}, nil
}

// Traverse walks tree depth-first from the root until target is settled or
// every reachable cell has been explored.
//
// A cell may be pushed more than once but is only settled once. Parents are
// assigned when a cell is first discovered, so the first discoverer wins.
// The target is not expanded. A target outside the grid fails with
// maze.ErrCellNotFound; an unreachable target yields an empty path.
func (DepthFirst) Traverse(tree *maze.Tree, target maze.CellPosition, rec animation.Recorder) (path, explored []*maze.Cell, err error) {
	if tree == nil || tree.Grid == nil || tree.Root == nil {
		return nil, nil, maze.ErrNoRoot
	}

	targetCell, err := tree.Grid.At(target)
	if err != nil {
		return nil, nil, err
	}

	stack := []*maze.Cell{tree.Root}
	parents := map[*maze.Cell]*maze.Cell{tree.Root: nil}
	settled := make(map[*maze.Cell]struct{})

	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, done := settled[cell]; done {
			continue
		}
		settled[cell] = struct{}{}
		explored = append(explored, cell)

		if rec != nil {
			var parent []int
			if p := parents[cell]; p != nil {
				parent = p.Coords().Pair()
			}
			rec.Record(animation.PhaseSolve, animation.KindExplore, animation.Payload{
				"cell":   cell.Coords().Pair(),
				"parent": parent,
			})
		}

		if cell == targetCell {
			break
		}

		for _, neighbor := range cell.Links() {
			if _, discovered := parents[neighbor]; discovered {
				continue
			}
			parents[neighbor] = cell
			stack = append(stack, neighbor)
		}
	}

	path = buildPath(parents, targetCell)

	if len(path) > 0 && rec != nil {
		rec.Record(animation.PhaseSolve, animation.KindPath, animation.Payload{
			"cells": pairs(path),
		})
	}

	return path, explored, nil
}
