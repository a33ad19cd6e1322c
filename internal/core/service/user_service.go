package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/martijn/feedback/internal/core/domain"
	"github.com/martijn/feedback/internal/core/repository"
)

// UserService is the user directory: registration, credential checks and
// account removal. Hashing is delegated to AuthService so plaintext passwords
// never travel further than this call path.
type UserService struct {
	userRepo repository.UserRepository
	auth     *AuthService
}

func NewUserService(userRepo repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
	}
}

// Register creates a user with a hashed password. Duplicate usernames or
// emails surface as domain.ErrConflict variants from the repository.
func (s *UserService) Register(ctx context.Context, username, password, email, firstName, lastName string) (*domain.User, error) {
	hashed, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, hashed, email, firstName, lastName)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user iff the credentials match. Unknown usernames
// and wrong passwords are both reported as ErrInvalidCredentials so account
// existence does not leak through the error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.auth.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

// Delete removes the user; owned feedback rows are removed by the schema's
// delete cascade.
func (s *UserService) Delete(ctx context.Context, username string) error {
	return s.userRepo.Delete(ctx, username)
}

// UpdatePassword rehashes and stores a new password for an existing user.
func (s *UserService) UpdatePassword(ctx context.Context, username, password string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	hashed, err := s.auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}
