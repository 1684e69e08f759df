package resumes

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var resumeColumns = []string{"id", "user_id", "template_id", "data", "created_at", "updated_at"}

func TestPGRepoGetByUserAndTemplate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, time.April, 2, 9, 30, 0, 0, time.UTC)
	raw := `{"summary":"Generated summary.","currentStep":"personal-info"}`
	mock.ExpectQuery(regexp.QuoteMeta("FROM resumes")).
		WithArgs("user-1", "modern-professional").
		WillReturnRows(sqlmock.NewRows(resumeColumns).
			AddRow("res-1", "user-1", "modern-professional", []byte(raw), now, now))

	repo := &PGRepo{DB: db}
	res, err := repo.GetByUserAndTemplate(context.Background(), "user-1", "modern-professional")
	if err != nil {
		t.Fatalf("GetByUserAndTemplate: %v", err)
	}
	if res.ID != "res-1" || res.TemplateID != "modern-professional" {
		t.Fatalf("unexpected resume: %+v", res)
	}
	if res.Data.Summary != "Generated summary." || res.Data.CurrentStep != "personal-info" {
		t.Fatalf("document body not decoded: %+v", res.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByUserAndTemplateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM resumes")).
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows(resumeColumns))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByUserAndTemplate(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO resumes")).
		WithArgs("res-1", "user-1", "modern-professional", sqlmock.AnyArg(), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Upsert(context.Background(), Resume{
		ID:         "res-1",
		UserID:     "user-1",
		TemplateID: "modern-professional",
		Data:       BuilderData{Summary: "Generated summary."},
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, time.April, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(resumeColumns).
			AddRow("res-2", "user-1", "executive-classic", []byte(`{}`), now, now.Add(time.Hour)).
			AddRow("res-1", "user-1", "modern-professional", []byte(`{}`), now, now))

	repo := &PGRepo{DB: db}
	list, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 || list[0].ID != "res-2" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
