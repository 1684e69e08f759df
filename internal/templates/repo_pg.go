package templates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The template body is stored as
// JSONB; rows are seeded from the built-in registry at migration time.
type PGRepo struct {
	DB *sql.DB
}

// List returns all templates ordered by name.
func (r *PGRepo) List(ctx context.Context) ([]Template, error) {
	const query = `SELECT id, data FROM templates ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Template, 0, 8)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var t Template
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("decode template %s: %w", id, err)
		}
		t.ID = id
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns the template with the given id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Template, error) {
	const query = `SELECT data FROM templates WHERE id = $1`
	var raw []byte
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	var t Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return Template{}, fmt.Errorf("decode template %s: %w", id, err)
	}
	t.ID = id
	return t, nil
}

// Seed inserts catalog templates that are not present yet.
func (r *PGRepo) Seed(ctx context.Context, catalog []Template) error {
	const query = `
INSERT INTO templates (id, name, data)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`
	for _, t := range catalog {
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encode template %s: %w", t.ID, err)
		}
		if _, err := r.DB.ExecContext(ctx, query, t.ID, t.Name, raw); err != nil {
			return err
		}
	}
	return nil
}
