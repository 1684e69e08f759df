package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The document body is stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// GetByUserAndTemplate returns the resume a user has for a template.
func (r *PGRepo) GetByUserAndTemplate(ctx context.Context, userID, templateID string) (Resume, error) {
	const query = `
SELECT id, user_id, template_id, data, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND template_id = $2`
	var res Resume
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, userID, templateID).Scan(
		&res.ID,
		&res.UserID,
		&res.TemplateID,
		&raw,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if err := json.Unmarshal(raw, &res.Data); err != nil {
		return Resume{}, fmt.Errorf("decode resume %s: %w", res.ID, err)
	}
	return res, nil
}

// Upsert inserts or replaces a resume keyed by user and template.
func (r *PGRepo) Upsert(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, template_id, data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, template_id)
DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	raw, err := json.Marshal(resume.Data)
	if err != nil {
		return fmt.Errorf("encode resume %s: %w", resume.ID, err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.TemplateID,
		raw,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// ListByUser returns a user's resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, template_id, data, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0, 4)
	for rows.Next() {
		var res Resume
		var raw []byte
		if err := rows.Scan(&res.ID, &res.UserID, &res.TemplateID, &raw, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &res.Data); err != nil {
			return nil, fmt.Errorf("decode resume %s: %w", res.ID, err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
