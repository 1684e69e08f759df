package resumes

import "context"

// Repo defines persistence operations for resume documents.
type Repo interface {
	GetByUserAndTemplate(ctx context.Context, userID, templateID string) (Resume, error)
	Upsert(ctx context.Context, resume Resume) error
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
}
