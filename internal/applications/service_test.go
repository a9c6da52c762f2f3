package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	"ats-backend/internal/candidates"
	"ats-backend/internal/jobs"
)

func newTestService(t *testing.T) (*Service, candidates.Candidate, jobs.Job) {
	t.Helper()
	candidateRepo := candidates.NewMemoryRepo()
	jobRepo := jobs.NewMemoryRepo()

	candidate := candidates.Candidate{
		ID:        "11111111-1111-4111-8111-111111111111",
		FullName:  "Ada Lovelace",
		Email:     "ada@example.com",
		CreatedAt: time.Now().UTC(),
	}
	if err := candidateRepo.Create(context.Background(), candidate); err != nil {
		t.Fatal(err)
	}

	job := jobs.Job{
		ID:        "22222222-2222-4222-8222-222222222222",
		Title:     "Backend Engineer",
		Status:    jobs.StatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := jobRepo.Create(context.Background(), job); err != nil {
		t.Fatal(err)
	}

	return NewService(NewMemoryRepo(), candidateRepo, jobRepo), candidate, job
}

func TestApply(t *testing.T) {
	svc, candidate, job := newTestService(t)

	application, err := svc.Apply(context.Background(), candidate.ID, job.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if application.Status != StatusApplied {
		t.Fatalf("status = %q", application.Status)
	}
}

func TestApplyDuplicate(t *testing.T) {
	svc, candidate, job := newTestService(t)

	if _, err := svc.Apply(context.Background(), candidate.ID, job.ID); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if _, err := svc.Apply(context.Background(), candidate.ID, job.ID); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestApplyUnknownCandidate(t *testing.T) {
	svc, _, job := newTestService(t)
	if _, err := svc.Apply(context.Background(), "33333333-3333-4333-8333-333333333333", job.ID); !errors.Is(err, candidates.ErrNotFound) {
		t.Fatalf("expected candidates.ErrNotFound, got %v", err)
	}
}

func TestApplyClosedJob(t *testing.T) {
	svc, candidate, job := newTestService(t)

	job.Status = jobs.StatusClosed
	if err := svc.Jobs.(*jobs.MemoryRepo).Update(context.Background(), job); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Apply(context.Background(), candidate.ID, job.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTransition(t *testing.T) {
	svc, candidate, job := newTestService(t)
	application, err := svc.Apply(context.Background(), candidate.ID, job.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	updated, err := svc.Transition(context.Background(), application.ID, "interview")
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated.Status != StatusInterview {
		t.Fatalf("status = %q", updated.Status)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	svc, candidate, job := newTestService(t)
	application, _ := svc.Apply(context.Background(), candidate.ID, job.ID)

	if _, err := svc.Transition(context.Background(), application.ID, "screening"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// The stored status is untouched.
	stored, err := svc.Get(context.Background(), application.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != StatusApplied {
		t.Fatalf("status = %q", stored.Status)
	}
}

func TestListFilters(t *testing.T) {
	svc, candidate, job := newTestService(t)
	if _, err := svc.Apply(context.Background(), candidate.ID, job.ID); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	byJob, err := svc.List(context.Background(), Filter{JobID: job.ID}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byJob) != 1 {
		t.Fatalf("byJob = %+v", byJob)
	}

	none, err := svc.List(context.Background(), Filter{JobID: "other"}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("none = %+v", none)
	}
}
