package service

import (
	"context"
	"time"

	"github.com/martijn/feedback/internal/core/domain"
	"github.com/martijn/feedback/internal/core/repository"
)

// FeedbackService gates every mutation on the acting identity. The actor is
// the session's username claim, or "" for anonymous requests; ownership is
// checked before any write reaches the repository.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// Create stores a new note owned by the actor. Users can only create feedback
// for themselves, so the owner is always the actor.
func (s *FeedbackService) Create(ctx context.Context, actor, title, content string) (*domain.Feedback, error) {
	if actor == "" {
		return nil, domain.ErrUnauthorized
	}

	feedback := domain.NewFeedback(actor, title, content)
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// Get is a public read.
func (s *FeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	return s.feedbackRepo.FindByID(ctx, id)
}

// List returns all feedback, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]*domain.Feedback, error) {
	return s.feedbackRepo.List(ctx)
}

// ListByOwner returns the feedback owned by username, newest first.
func (s *FeedbackService) ListByOwner(ctx context.Context, username string) ([]*domain.Feedback, error) {
	return s.feedbackRepo.FindByUsername(ctx, username)
}

// Update mutates title and content of a note the actor owns.
func (s *FeedbackService) Update(ctx context.Context, actor string, id int64, title, content string) (*domain.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == "" || feedback.Username != actor {
		return nil, domain.ErrUnauthorized
	}

	feedback.Title = title
	feedback.Content = content
	feedback.UpdatedAt = time.Now()
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// Delete removes a note the actor owns.
func (s *FeedbackService) Delete(ctx context.Context, actor string, id int64) error {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor == "" || feedback.Username != actor {
		return domain.ErrUnauthorized
	}
	return s.feedbackRepo.Delete(ctx, feedback.ID)
}
