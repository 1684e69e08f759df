package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The flat record is stored as JSONB
// so clients can keep writing list fields in whichever shape they produce.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the stored profile for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT data, updated_at
FROM user_profiles
WHERE user_id = $1`
	var raw []byte
	var profile Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&raw, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if err := json.Unmarshal(raw, &profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	profile.UserID = userID
	return profile, nil
}

// Upsert stores or replaces a user's profile.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	if profile.UserID == "" {
		return ErrInvalidInput
	}
	const query = `
INSERT INTO user_profiles (user_id, data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id)
DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", profile.UserID, err)
	}
	_, err = r.DB.ExecContext(ctx, query, profile.UserID, raw, profile.UpdatedAt)
	return err
}
