package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userID -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Resume)}
}

// GetByUserAndTemplate returns the resume a user has for a template.
func (r *MemoryRepo) GetByUserAndTemplate(ctx context.Context, userID, templateID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.data[userID] {
		if res.TemplateID == templateID {
			return res, nil
		}
	}
	return Resume{}, ErrNotFound
}

// Upsert stores or replaces a resume keyed by user and template.
func (r *MemoryRepo) Upsert(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.data[resume.UserID]
	for i := range list {
		if list[i].TemplateID == resume.TemplateID {
			list[i] = resume
			r.data[resume.UserID] = list
			return nil
		}
	}
	r.data[resume.UserID] = append(list, resume)
	return nil
}

// ListByUser returns a user's resumes, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	list := r.data[userID]
	r.mu.RUnlock()

	out := make([]Resume, len(list))
	copy(out, list)
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}
