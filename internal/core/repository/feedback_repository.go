package repository

import (
	"context"

	"github.com/martijn/feedback/internal/core/domain"
)

// FeedbackRepository is a pure data contract. Ownership checks belong to the
// service layer; nothing here inspects the caller's identity.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	FindByID(ctx context.Context, id int64) (*domain.Feedback, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
	Update(ctx context.Context, feedback *domain.Feedback) error
	Delete(ctx context.Context, id int64) error
}
