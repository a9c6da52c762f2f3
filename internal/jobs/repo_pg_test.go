package jobs

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "title", "location", "description", "qualifications", "requirements", "status", "created_at", "updated_at",
	}).AddRow("job-1", "Backend Engineer", "Remote", "Build APIs", "BSc", "Go", StatusOpen, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, location, description, qualifications, requirements, status, created_at, updated_at")).
		WithArgs("job-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	job, err := repo.GetByID(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if job.Title != "Backend Engineer" || job.Status != StatusOpen {
		t.Fatalf("job = %+v", job)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs("missing").WillReturnRows(sqlmock.NewRows(nil))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE jobs").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Update(context.Background(), Job{ID: "missing", Title: "x", Status: StatusOpen}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListFiltersByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "title", "location", "description", "qualifications", "requirements", "status", "created_at", "updated_at",
	}).AddRow("job-1", "Backend Engineer", "", "", "", "", StatusOpen, now, now)

	mock.ExpectQuery("SELECT").
		WithArgs(StatusOpen, 20, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	items, err := repo.List(context.Background(), StatusOpen, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
