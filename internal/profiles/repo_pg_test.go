package profiles

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	updated := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	raw := `{"first_name":"Jane","experience_level":"senior","work_experience":"[{\"company\":\"Acme Corp\"}]"}`
	mock.ExpectQuery(regexp.QuoteMeta("SELECT data, updated_at")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data", "updated_at"}).AddRow([]byte(raw), updated))

	repo := &PGRepo{DB: db}
	profile, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.UserID != "user-1" {
		t.Fatalf("user id not set from key, got %q", profile.UserID)
	}
	if profile.FirstName != "Jane" || profile.ExperienceLevel != "senior" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if recs := profile.ExperienceRecords(); len(recs) != 1 || recs[0].Company != "Acme Corp" {
		t.Fatalf("stored JSON-string list field must round-trip: %+v", recs)
	}
	if !profile.UpdatedAt.Equal(updated) {
		t.Fatalf("unexpected updated_at: %v", profile.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT data, updated_at")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"data", "updated_at"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_profiles")).
		WithArgs("user-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Upsert(context.Background(), Profile{
		UserID:    "user-1",
		FirstName: "Jane",
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoUpsertRejectsEmptyUserID(t *testing.T) {
	repo := &PGRepo{}
	if err := repo.Upsert(context.Background(), Profile{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
