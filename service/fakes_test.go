package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

type memorySolveRepo struct {
	solves  map[uuid.UUID]*dmn.Solve
	reads   int
	saveErr error
	sync.Mutex
}

func newMemorySolveRepo() *memorySolveRepo {
	return &memorySolveRepo{solves: map[uuid.UUID]*dmn.Solve{}}
}

func (r *memorySolveRepo) Save(_ context.Context, s *dmn.Solve) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.solves[s.ID] = s
	return nil
}

func (r *memorySolveRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solve, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.Lock()
	defer r.Unlock()
	r.reads++
	s, ok := r.solves[id]
	if !ok {
		return nil, dmn.ErrSolveNotFound
	}
	return s, nil
}

func (r *memorySolveRepo) ByOwner(_ context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Solve, error) {
	r.Lock()
	defer r.Unlock()
	var out []*dmn.Solve
	for _, s := range r.solves {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memoryUserRepo struct {
	users     map[uuid.UUID]*dmn.User
	lookupErr error
	saveErr   error
	sync.Mutex
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]*dmn.User{}}
}

func (r *memoryUserRepo) Save(u *dmn.User) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) ByUsername(username string) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memoryUserRepo) IncrementSolveCount(id uuid.UUID) error {
	r.Lock()
	defer r.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dmn.ErrUserNotFound
	}
	u.SolveCount++
	return nil
}

type memoryCache struct {
	entries map[uuid.UUID][]byte
	fills   int
	getErr  error
	lockErr error
	sync.Mutex
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[uuid.UUID][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) ([]byte, bool, error) {
	c.Lock()
	defer c.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	data, ok := c.entries[id]
	return data, ok, nil
}

func (c *memoryCache) Set(_ context.Context, id uuid.UUID, data []byte) error {
	c.Lock()
	defer c.Unlock()
	c.entries[id] = data
	return nil
}

func (c *memoryCache) WithFillLock(_ context.Context, _ uuid.UUID, fill func() error) error {
	c.Lock()
	c.fills++
	lockErr := c.lockErr
	c.Unlock()
	if lockErr != nil {
		return lockErr
	}
	return fill()
}

type recordingLogger struct {
	infos, warnings, errors []string
	sync.Mutex
}

func (l *recordingLogger) Info(msg string) {
	l.Lock()
	defer l.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.Lock()
	defer l.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.Lock()
	defer l.Unlock()
	l.errors = append(l.errors, msg)
}

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
	err    error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.claims, s.ttl = claims, expTime
	return "token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
