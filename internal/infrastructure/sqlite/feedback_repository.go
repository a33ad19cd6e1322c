package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/feedback/internal/core/domain"
	"github.com/martijn/feedback/internal/core/repository"
)

type feedbackRepository struct {
	db *DB
}

func NewFeedbackRepository(db *DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback (title, content, username, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		feedback.Title,
		feedback.Content,
		feedback.Username,
		feedback.CreatedAt,
		feedback.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get feedback id: %w", err)
	}
	feedback.ID = id
	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	query := `
		SELECT id, title, content, username, created_at, updated_at
		FROM feedback
		WHERE id = ?
	`
	var feedback domain.Feedback
	err := r.db.GetContext(ctx, &feedback, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Feedback, error) {
	query := `
		SELECT id, title, content, username, created_at, updated_at
		FROM feedback
		WHERE username = ?
		ORDER BY created_at DESC, id DESC
	`
	var feedback []*domain.Feedback
	err := r.db.SelectContext(ctx, &feedback, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback for user: %w", err)
	}
	return feedback, nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	query := `
		SELECT id, title, content, username, created_at, updated_at
		FROM feedback
		ORDER BY created_at DESC, id DESC
	`
	var feedback []*domain.Feedback
	err := r.db.SelectContext(ctx, &feedback, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}

// Update mutates title and content only; id and owner never change.
func (r *feedbackRepository) Update(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		UPDATE feedback
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		feedback.Title,
		feedback.Content,
		feedback.UpdatedAt,
		feedback.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM feedback WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
