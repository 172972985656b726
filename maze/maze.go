/*
Package maze provides tools for creating and walking rectangular mazes.

A Grid owns Width x Height cells. Passages between neighbouring cells are
links; a Tree pairs a grid with the root cell solvers start from.

The package includes random maze generation with Wilson's algorithm,
coordinate lookup and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxDimension bounds the width and height of a grid.
	MaxDimension = 64
)

var (
	// Directions lists the compass offsets in the order neighbours are visited.
	Directions = []struct {
		Name  string
		Delta CellPosition
	}{
		{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
		{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
		{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
		{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
	}

	ErrCellNotFound     = errors.New("cell not found")
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	ErrNotAdjacent      = errors.New("cells are not adjacent")
	ErrNoRoot           = errors.New("maze tree has no root")
)

// Grid is a rectangular arrangement of cells.
type Grid struct {
	Width  int       // Width of the grid (number of columns)
	Height int       // Height of the grid (number of rows)
	cells  [][]*Cell // cells indexed by [row][col]
}

// NewGrid creates a grid with every cell walled off.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) <= 0 || max(width, height) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	cells := make([][]*Cell, height)
	for row := range cells {
		cells[row] = make([]*Cell, width)
		for col := range cells[row] {
			cells[row][col] = newCell(row, col)
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Cell looks up the cell at (row, col).
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if !g.InBound(row, col) {
		return nil, fmt.Errorf("%w at (%d,%d) in %dx%d grid", ErrCellNotFound, row, col, g.Width, g.Height)
	}
	return g.cells[row][col], nil
}

// At is Cell for a CellPosition.
func (g *Grid) At(pos CellPosition) (*Cell, error) {
	return g.Cell(pos.Row, pos.Col)
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.Size())
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}

// Neighbors returns the in-bound compass neighbours of c, linked or not.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	var result []*Cell
	for _, dir := range Directions {
		row, col := c.Row()+dir.Delta.Row, c.Col()+dir.Delta.Col
		if g.InBound(row, col) {
			result = append(result, g.cells[row][col])
		}
	}
	return result
}

// Link opens the wall between two adjacent cells.
func (g *Grid) Link(a, b *Cell) error {
	dr, dc := a.Row()-b.Row(), a.Col()-b.Col()
	if dr*dr+dc*dc != 1 {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	a.link(b)
	b.link(a)
	return nil
}

// LinkCount returns the number of passages in the grid.
func (g *Grid) LinkCount() int {
	total := 0
	for _, c := range g.Cells() {
		total += len(c.links)
	}
	return total / 2
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for row := 0; row < g.Height; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			cell := g.cells[row][col]

			if col+1 < g.Width && cell.Linked(g.cells[row][col+1]) {
				cellRow += "    "
			} else {
				cellRow += "   |"
			}

			if row+1 < g.Height && cell.Linked(g.cells[row+1][col]) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}

// Tree is a grid whose links form a spanning tree, plus the root solvers start from.
type Tree struct {
	Grid *Grid
	Root *Cell
}

// NewTree pairs grid with the cell at root.
func NewTree(grid *Grid, root CellPosition) (*Tree, error) {
	if grid == nil {
		return nil, ErrNoRoot
	}
	cell, err := grid.At(root)
	if err != nil {
		return nil, err
	}
	return &Tree{Grid: grid, Root: cell}, nil
}

// Cell looks up the cell at pos in the tree's grid.
func (t *Tree) Cell(pos CellPosition) (*Cell, error) {
	return t.Grid.At(pos)
}
