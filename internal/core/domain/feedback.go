package domain

import "time"

const TitleMaxLen = 100

type Feedback struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Username  string    `db:"username"` // owner, immutable after creation
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewFeedback builds a feedback note owned by username. The ID is assigned by
// the repository on insert.
func NewFeedback(username, title, content string) *Feedback {
	now := time.Now()
	return &Feedback{
		Title:     title,
		Content:   content,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
