// Package domain holds the persisted models of the solver service.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/uuid"
)

var (
	ErrSolveNotFound = errors.New("solve not found")
)

// Solve is one generate-and-solve run together with its animation.
type Solve struct {
	ID            uuid.UUID           `bson:"_id"`
	OwnerID       uuid.UUID           `bson:"ownerId"`
	Solver        string              `bson:"solver"`
	Width         int                 `bson:"width"`
	Height        int                 `bson:"height"`
	Seed          int64               `bson:"seed"`
	Start         maze.CellPosition   `bson:"start"`
	Target        maze.CellPosition   `bson:"target"`
	Found         bool                `bson:"found"`
	Path          []maze.CellPosition `bson:"path"`
	ExploredCount int                 `bson:"exploredCount"`
	Animation     []byte              `bson:"animation"` // Encoded animation.Document
	CreatedAt     time.Time           `bson:"createdAt"`
}

// SolveConfig holds the inputs and outcome a Solve is built from.
type SolveConfig struct {
	OwnerID   uuid.UUID
	Width     int
	Height    int
	Seed      int64
	Start     maze.CellPosition
	Target    maze.CellPosition
	Result    *solver.Result
	Animation []byte
}

// NewSolve creates a Solve with a fresh ID.
func NewSolve(config SolveConfig) *Solve {
	return &Solve{
		ID:            uuid.New(),
		OwnerID:       config.OwnerID,
		Solver:        config.Result.Solver,
		Width:         config.Width,
		Height:        config.Height,
		Seed:          config.Seed,
		Start:         config.Start,
		Target:        config.Target,
		Found:         config.Result.Found(),
		Path:          config.Result.PathCoords(),
		ExploredCount: len(config.Result.Explored),
		Animation:     config.Animation,
		CreatedAt:     time.Now().UTC(),
	}
}

// PathLength returns the number of cells on the path.
func (s *Solve) PathLength() int {
	return len(s.Path)
}
