package i

import (
	"context"

	"github.com/google/uuid"
)

// AnimationCache keeps encoded animation documents close to the API.
type AnimationCache interface {
	// Get returns the cached animation and whether it was present.
	Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error)

	// Set stores an animation with the cache's TTL.
	Set(ctx context.Context, id uuid.UUID, animation []byte) error

	// WithFillLock runs fill while holding a lock scoped to id, so concurrent
	// misses for the same animation are filled once.
	WithFillLock(ctx context.Context, id uuid.UUID, fill func() error) error
}
