package dto

import "time"

// UserResponse represents a user. The password hash is never part of any
// response shape.
type UserResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileResponse is the owner's view of their account: the user plus the
// feedback they own.
type ProfileResponse struct {
	User     UserResponse       `json:"user"`
	Feedback []FeedbackResponse `json:"feedback"`
}
