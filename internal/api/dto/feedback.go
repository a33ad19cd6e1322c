package dto

import "time"

// CreateFeedbackRequest represents the feedback creation request
type CreateFeedbackRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

// UpdateFeedbackRequest represents the feedback update request. Only title
// and content are mutable.
type UpdateFeedbackRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

// FeedbackResponse represents a feedback note
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackListResponse represents a list of feedback notes
type FeedbackListResponse struct {
	Items      []FeedbackResponse `json:"items"`
	Pagination PaginationInfo     `json:"pagination"`
}
