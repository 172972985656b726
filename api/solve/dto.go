// Package solveapi exposes maze solving over HTTP.
package solveapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
)

// SolveRequest asks for a maze to be generated and solved.
type SolveRequest struct {
	Width  int               `json:"width" binding:"required,min=1"`
	Height int               `json:"height" binding:"required,min=1"`
	Start  maze.CellPosition `json:"start"`
	Target maze.CellPosition `json:"target"`
	Seed   *int64            `json:"seed"`
	Solver string            `json:"solver"`
}

// SolveResponse summarises a stored solve.
type SolveResponse struct {
	ID            string              `json:"id"`
	Solver        string              `json:"solver"`
	Width         int                 `json:"width"`
	Height        int                 `json:"height"`
	Seed          int64               `json:"seed"`
	Start         maze.CellPosition   `json:"start"`
	Target        maze.CellPosition   `json:"target"`
	Found         bool                `json:"found"`
	Path          []maze.CellPosition `json:"path"`
	ExploredCount int                 `json:"explored_count"`
	AnimationURL  string              `json:"animation_url"`
	CreatedAt     time.Time           `json:"created_at"`
}

func newSolveResponse(s *dmn.Solve, animationURL string) *SolveResponse {
	path := s.Path
	if path == nil {
		path = []maze.CellPosition{}
	}
	return &SolveResponse{
		ID:            s.ID.String(),
		Solver:        s.Solver,
		Width:         s.Width,
		Height:        s.Height,
		Seed:          s.Seed,
		Start:         s.Start,
		Target:        s.Target,
		Found:         s.Found,
		Path:          path,
		ExploredCount: s.ExploredCount,
		AnimationURL:  animationURL,
		CreatedAt:     s.CreatedAt,
	}
}
