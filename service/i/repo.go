package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)

	// IncrementSolveCount bumps the number of solves owned by the user.
	IncrementSolveCount(id uuid.UUID) error
}

// SolveRepo defines the interface for solve persistence operations.
type SolveRepo interface {
	// Save inserts a solve.
	Save(ctx context.Context, solve *dmn.Solve) error

	// ByID retrieves a solve, including its animation.
	// Returns dmn.ErrSolveNotFound if there is no such solve.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Solve, error)

	// ByOwner lists up to limit solves of an owner, newest first, without animations.
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Solve, error)
}
