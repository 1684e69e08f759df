package templates

import "context"

// Repo defines read operations over the template catalog.
type Repo interface {
	List(ctx context.Context) ([]Template, error)
	GetByID(ctx context.Context, id string) (Template, error)
}
