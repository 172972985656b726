package maze

import "fmt"

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Pair returns the position as a [row, col] pair, the shape used in animation payloads.
func (cp CellPosition) Pair() []int {
	return []int{cp.Row, cp.Col}
}

// String implements fmt.Stringer.
func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// Cell represents a single cell in a maze grid.
// Passages are modelled as links to neighbouring cells; a missing link is a wall.
// Cells are compared by identity, so *Cell is safe to use as a map key.
type Cell struct {
	pos   CellPosition
	links []*Cell // linked neighbours in the order they were carved
}

func newCell(row, col int) *Cell {
	return &Cell{pos: CellPosition{Row: row, Col: col}}
}

// Coords returns the position of the cell.
func (c *Cell) Coords() CellPosition {
	return c.pos
}

// Row returns the row index of the cell.
func (c *Cell) Row() int {
	return c.pos.Row
}

// Col returns the column index of the cell.
func (c *Cell) Col() int {
	return c.pos.Col
}

// Links returns the linked neighbours in link order.
// The returned slice is a copy; mutating it does not change the maze.
func (c *Cell) Links() []*Cell {
	out := make([]*Cell, len(c.links))
	copy(out, c.links)
	return out
}

// Linked reports whether there is a passage between c and other.
func (c *Cell) Linked(other *Cell) bool {
	for _, l := range c.links {
		if l == other {
			return true
		}
	}
	return false
}

// link adds a one-way link; callers keep both directions in sync.
func (c *Cell) link(other *Cell) {
	if !c.Linked(other) {
		c.links = append(c.links, other)
	}
}

// String implements fmt.Stringer.
func (c *Cell) String() string {
	return c.pos.String()
}
