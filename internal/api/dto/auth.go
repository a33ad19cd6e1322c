package dto

// RegisterRequest represents the registration request. Field limits mirror
// the schema; binding rejects anything outside them before a handler runs.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=20"`
	Password  string `json:"password" binding:"required,min=1"`
	Email     string `json:"email" binding:"required,email,max=50"`
	FirstName string `json:"first_name" binding:"required,max=30"`
	LastName  string `json:"last_name" binding:"required,max=30"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents an issued session
type SessionResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"` // In seconds
	User      UserResponse `json:"user"`
}
