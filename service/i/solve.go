package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/google/uuid"
)

// SolveRequest describes a maze to generate and the search to run on it.
type SolveRequest struct {
	Width  int
	Height int
	Start  maze.CellPosition
	Target maze.CellPosition
	Seed   *int64 // nil picks a seed
	Solver string // empty picks the default solver
}

// Solver generates mazes, solves them and serves the recorded runs.
type Solver interface {
	Solve(ctx context.Context, ownerID uuid.UUID, req SolveRequest) (*dmn.Solve, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Solve, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Solve, error)
	Animation(ctx context.Context, id uuid.UUID) ([]byte, error)
	SolverNames() []string
}
