package jobs

import (
	"context"
	"errors"
	"testing"
)

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Create(context.Background(), CreateInput{Location: "Remote"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateDefaultsToOpen(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job, err := svc.Create(context.Background(), CreateInput{Title: "  Backend Engineer  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Status != StatusOpen {
		t.Fatalf("status = %q", job.Status)
	}
	if job.Title != "Backend Engineer" {
		t.Fatalf("title not trimmed: %q", job.Title)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job, err := svc.Create(context.Background(), CreateInput{Title: "Backend Engineer", Location: "Remote"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	closed := StatusClosed
	updated, err := svc.Update(context.Background(), job.ID, UpdateInput{Status: &closed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != StatusClosed {
		t.Fatalf("status = %q", updated.Status)
	}
	if updated.Location != "Remote" {
		t.Fatalf("untouched field changed: %q", updated.Location)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	job, _ := svc.Create(context.Background(), CreateInput{Title: "Backend Engineer"})

	bogus := "paused"
	if _, err := svc.Update(context.Background(), job.ID, UpdateInput{Status: &bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	open, _ := svc.Create(context.Background(), CreateInput{Title: "Open role"})
	closedJob, _ := svc.Create(context.Background(), CreateInput{Title: "Closed role"})
	closed := StatusClosed
	if _, err := svc.Update(context.Background(), closedJob.ID, UpdateInput{Status: &closed}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	items, err := svc.List(context.Background(), StatusOpen, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].ID != open.ID {
		t.Fatalf("items = %+v", items)
	}

	if _, err := svc.List(context.Background(), "bogus", 10, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
