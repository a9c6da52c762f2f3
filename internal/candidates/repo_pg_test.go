package candidates

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func candidateRows(candidate Candidate, profileJSON string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "email", "phone",
		"resume_key", "resume_file_name", "resume_mime_type",
		"profile", "extraction_status", "created_at", "updated_at",
	}).AddRow(
		candidate.ID, candidate.FullName, candidate.Email, candidate.Phone,
		candidate.ResumeKey, candidate.ResumeFileName, candidate.ResumeMimeType,
		[]byte(profileJSON), candidate.ExtractionStatus, candidate.CreatedAt, candidate.UpdatedAt,
	)
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now().UTC()
	want := Candidate{
		ID:               "cand-1",
		FullName:         "Ada Lovelace",
		Email:            "ada@example.com",
		ResumeKey:        "resumes/cand-1/resume.pdf",
		ExtractionStatus: ExtractionOK,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, phone, resume_key, resume_file_name, resume_mime_type, profile, extraction_status, created_at, updated_at")).
		WithArgs("cand-1").
		WillReturnRows(candidateRows(want, `{"skills":["Go"]}`))

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), "cand-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FullName != want.FullName || got.ExtractionStatus != ExtractionOK {
		t.Fatalf("got %+v", got)
	}
	if len(got.Profile.Skills) != 1 || got.Profile.Skills[0] != "Go" {
		t.Fatalf("profile = %+v", got.Profile)
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

func TestPGRepoUpdateResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE candidates")).
		WithArgs("resumes/cand-1/resume.pdf", "resume.pdf", "application/pdf",
			sqlmock.AnyArg(), ExtractionOK, sqlmock.AnyArg(), "cand-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.UpdateResume(context.Background(), "cand-1", ResumeUpdate{
		ResumeKey:        "resumes/cand-1/resume.pdf",
		ResumeFileName:   "resume.pdf",
		ResumeMimeType:   "application/pdf",
		Profile:          Profile{Skills: []string{"Go"}},
		ExtractionStatus: ExtractionOK,
	})
	if err != nil {
		t.Fatalf("UpdateResume: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoUpdateResumeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE candidates").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	err = repo.UpdateResume(context.Background(), "missing", ResumeUpdate{ExtractionStatus: ExtractionFailed})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE candidates")).
		WithArgs("cand-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "cand-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
