package service

import (
	"context"
	"errors"
	"testing"

	"github.com/martijn/feedback/internal/core/domain"
)

func TestCreateFeedback(t *testing.T) {
	env := setupServiceTestEnv(t)
	env.registerAlice(t)

	feedback, err := env.feedbackService.Create(context.Background(), "alice", "T", "C")
	if err != nil {
		t.Fatalf("failed to create feedback: %v", err)
	}
	if feedback.ID == 0 {
		t.Error("expected a fresh id to be assigned")
	}
	if feedback.Username != "alice" {
		t.Errorf("expected owner 'alice', got %q", feedback.Username)
	}

	second, err := env.feedbackService.Create(context.Background(), "alice", "T2", "C2")
	if err != nil {
		t.Fatalf("failed to create second feedback: %v", err)
	}
	if second.ID == feedback.ID {
		t.Error("ids must be unique")
	}
}

func TestCreateFeedbackAnonymous(t *testing.T) {
	env := setupServiceTestEnv(t)

	if _, err := env.feedbackService.Create(context.Background(), "", "T", "C"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for anonymous create, got %v", err)
	}
}

func TestUpdateFeedbackOwnership(t *testing.T) {
	env := setupServiceTestEnv(t)
	env.registerAlice(t)
	if _, err := env.userService.Register(context.Background(), "bob", "secret", "b@x.com", "B", "M"); err != nil {
		t.Fatalf("failed to register bob: %v", err)
	}

	feedback, err := env.feedbackService.Create(context.Background(), "alice", "T", "C")
	if err != nil {
		t.Fatalf("failed to create feedback: %v", err)
	}

	tests := []struct {
		name    string
		actor   string
		wantErr error
	}{
		{"anonymous", "", domain.ErrUnauthorized},
		{"wrong owner", "bob", domain.ErrUnauthorized},
		{"owner", "alice", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.feedbackService.Update(context.Background(), tt.actor, feedback.ID, "T2", "C2")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			// Rejected update must leave the row untouched.
			stored, getErr := env.feedbackService.Get(context.Background(), feedback.ID)
			if getErr != nil {
				t.Fatalf("failed to fetch feedback: %v", getErr)
			}
			if stored.Title != "T" || stored.Content != "C" {
				t.Errorf("feedback was modified by rejected update: %+v", stored)
			}
		})
	}

	// The owner's update landed last; owner and id stayed fixed.
	stored, err := env.feedbackService.Get(context.Background(), feedback.ID)
	if err != nil {
		t.Fatalf("failed to fetch feedback: %v", err)
	}
	if stored.Title != "T2" || stored.Content != "C2" {
		t.Errorf("expected updated title/content, got %+v", stored)
	}
	if stored.Username != "alice" || stored.ID != feedback.ID {
		t.Errorf("owner and id must be immutable, got %+v", stored)
	}
}

func TestDeleteFeedbackOwnership(t *testing.T) {
	env := setupServiceTestEnv(t)
	env.registerAlice(t)
	if _, err := env.userService.Register(context.Background(), "bob", "secret", "b@x.com", "B", "M"); err != nil {
		t.Fatalf("failed to register bob: %v", err)
	}

	feedback, err := env.feedbackService.Create(context.Background(), "bob", "T", "C")
	if err != nil {
		t.Fatalf("failed to create feedback: %v", err)
	}

	// alice cannot delete bob's note, and the row survives the attempt.
	if err := env.feedbackService.Delete(context.Background(), "alice", feedback.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := env.feedbackService.Get(context.Background(), feedback.ID); err != nil {
		t.Fatalf("feedback must still exist after rejected delete: %v", err)
	}

	if err := env.feedbackService.Delete(context.Background(), "", feedback.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for anonymous delete, got %v", err)
	}

	if err := env.feedbackService.Delete(context.Background(), "bob", feedback.ID); err != nil {
		t.Fatalf("owner delete must succeed: %v", err)
	}
	if _, err := env.feedbackService.Get(context.Background(), feedback.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetFeedbackNotFound(t *testing.T) {
	env := setupServiceTestEnv(t)

	if _, err := env.feedbackService.Get(context.Background(), 12345); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := env.feedbackService.Delete(context.Background(), "alice", 12345); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for delete of missing id, got %v", err)
	}
}

func TestListFeedbackNewestFirst(t *testing.T) {
	env := setupServiceTestEnv(t)
	env.registerAlice(t)

	first, err := env.feedbackService.Create(context.Background(), "alice", "first", "1")
	if err != nil {
		t.Fatalf("failed to create feedback: %v", err)
	}
	second, err := env.feedbackService.Create(context.Background(), "alice", "second", "2")
	if err != nil {
		t.Fatalf("failed to create feedback: %v", err)
	}

	list, err := env.feedbackService.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list feedback: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("expected newest first, got ids %d, %d", list[0].ID, list[1].ID)
	}
}
