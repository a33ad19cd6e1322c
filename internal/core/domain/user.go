package domain

import "time"

// Field length limits enforced at the binding layer and mirrored in the schema.
const (
	UsernameMaxLen  = 20
	EmailMaxLen     = 50
	FirstNameMaxLen = 30
	LastNameMaxLen  = 30
)

type User struct {
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"` // bcrypt hashed, never rendered
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// NewUser builds a user from an already-hashed password. Callers must never
// pass plaintext here; hashing belongs to the auth service.
func NewUser(username, hashedPassword, email, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Username:     username,
		PasswordHash: hashedPassword,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
