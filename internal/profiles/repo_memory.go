package profiles

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Profile)}
}

// Get returns the stored profile for a user.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.data[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

// Upsert stores or replaces a user's profile.
func (r *MemoryRepo) Upsert(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if profile.UserID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[profile.UserID] = profile
	return nil
}
