package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-solver/animation"
	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/google/uuid"
)

const (
	defaultSolver    = solver.DFSName
	defaultListLimit = 20
	maxListLimit     = 100

	fallbackTimeout = 2 * time.Second
)

var (
	ErrInvalidSolveRequest = errors.New("invalid solve request")
	ErrMissingDependency   = errors.New("missing dependency")
)

// SolveService generates mazes, solves them and keeps the recorded runs.
type SolveService struct {
	solveRepo i.SolveRepo
	userRepo  i.UserRepo
	cache     i.AnimationCache
	logger    i.Logger
	seed      func() int64
}

// Config holds the dependencies of a SolveService.
type Config struct {
	SolveRepo  i.SolveRepo
	UserRepo   i.UserRepo       // Optional; solve counts are not tracked without it
	Cache      i.AnimationCache // Optional; animations are always read from the repo without it
	Logger     i.Logger
	SeedSource func() int64 // Optional; defaults to the current time
}

// NewSolveService creates a SolveService from c.
func NewSolveService(c *Config) (*SolveService, error) {
	if c.SolveRepo == nil {
		return nil, fmt.Errorf("%w: solve repo", ErrMissingDependency)
	}
	if c.Logger == nil {
		return nil, fmt.Errorf("%w: logger", ErrMissingDependency)
	}

	seed := c.SeedSource
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}

	return &SolveService{
		solveRepo: c.SolveRepo,
		userRepo:  c.UserRepo,
		cache:     c.Cache,
		logger:    c.Logger,
		seed:      seed,
	}, nil
}

// Solve generates the requested maze, runs the solver over it while recording
// both phases, and stores the run.
func (s *SolveService) Solve(ctx context.Context, ownerID uuid.UUID, req i.SolveRequest) (*dmn.Solve, error) {
	name := req.Solver
	if name == "" {
		name = defaultSolver
	}
	sv, err := solver.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSolveRequest, err)
	}

	seed := s.seed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	timeline := animation.NewTimeline()
	tree, err := maze.Generate(req.Width, req.Height, maze.GenerateOptions{
		Root:     req.Start,
		Seed:     seed,
		Recorder: timeline,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSolveRequest, err)
	}

	result, err := sv.Solve(tree, req.Target, timeline)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSolveRequest, err)
	}

	doc := timeline.Document(req.Width, req.Height, req.Start.Pair(), req.Target.Pair())
	data, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	solve := dmn.NewSolve(dmn.SolveConfig{
		OwnerID:   ownerID,
		Width:     req.Width,
		Height:    req.Height,
		Seed:      seed,
		Start:     req.Start,
		Target:    req.Target,
		Result:    result,
		Animation: data,
	})

	if err := s.solveRepo.Save(ctx, solve); err != nil {
		s.logger.Error(fmt.Sprintf("Saving solve %s: %v", solve.ID, err))
		return nil, err
	}

	if s.userRepo != nil {
		if err := s.userRepo.IncrementSolveCount(ownerID); err != nil {
			s.logger.Warning(fmt.Sprintf("Incrementing solve count of %s: %v", ownerID, err))
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, solve.ID, data); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching animation %s: %v", solve.ID, err))
		}
	}

	s.logger.Info(fmt.Sprintf("Solved %dx%d maze %s with %s: found=%t path=%d explored=%d",
		req.Width, req.Height, solve.ID, name, solve.Found, solve.PathLength(), solve.ExploredCount))

	return solve, nil
}

// ByID returns a stored solve.
func (s *SolveService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solve, error) {
	return s.solveRepo.ByID(ctx, id)
}

// ByOwner lists an owner's solves, newest first. Non-positive limits use the default.
func (s *SolveService) ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Solve, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	return s.solveRepo.ByOwner(ctx, ownerID, limit)
}

// Animation returns the encoded animation of a solve, from the cache when possible.
func (s *SolveService) Animation(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if s.cache == nil {
		return s.animationFromRepo(ctx, id)
	}

	data, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading cached animation %s: %v", id, err))
	} else if ok {
		return data, nil
	}

	err = s.cache.WithFillLock(ctx, id, func() error {
		if cached, ok, err := s.cache.Get(ctx, id); err == nil && ok {
			data = cached
			return nil
		}

		loaded, err := s.animationFromRepo(ctx, id)
		if err != nil {
			return err
		}
		data = loaded

		if err := s.cache.Set(ctx, id, loaded); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching animation %s: %v", id, err))
		}
		return nil
	})
	if err == nil {
		return data, nil
	}
	if errors.Is(err, dmn.ErrSolveNotFound) {
		return nil, err
	}

	s.logger.Warning(fmt.Sprintf("Filling animation cache for %s: %v", id, err))

	// Waiting on the lock may have used up ctx.
	if ctx.Err() != nil {
		fallbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fallbackTimeout)
		defer cancel()
		return s.animationFromRepo(fallbackCtx, id)
	}
	return s.animationFromRepo(ctx, id)
}

// SolverNames lists the solvers a request may name.
func (s *SolveService) SolverNames() []string {
	return solver.Names()
}

func (s *SolveService) animationFromRepo(ctx context.Context, id uuid.UUID) ([]byte, error) {
	solve, err := s.solveRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return solve.Animation, nil
}
