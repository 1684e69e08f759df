package templates

import "context"

// MemoryRepo serves templates from an in-memory catalog, usually the
// built-in registry.
type MemoryRepo struct {
	templates []Template
}

// NewMemoryRepo constructs a MemoryRepo over the given catalog.
func NewMemoryRepo(catalog []Template) *MemoryRepo {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return &MemoryRepo{templates: out}
}

// List returns all templates in catalog order.
func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out, nil
}

// GetByID returns the template with the given id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrNotFound
}
