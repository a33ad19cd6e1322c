package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that the targeted user or feedback does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation. The field-specific variants
	// below wrap it so callers can match either the field or the class.
	ErrConflict      = errors.New("conflict")
	ErrUsernameTaken = fmt.Errorf("username already taken: %w", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("email already taken: %w", ErrConflict)

	// ErrInvalidCredentials covers both unknown username and wrong password;
	// the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized signals an owner-scoped operation attempted by a
	// different identity or anonymously.
	ErrUnauthorized = errors.New("unauthorized")
)
