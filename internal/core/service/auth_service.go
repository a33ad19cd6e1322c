package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/martijn/feedback/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionExpirationHours = 24
	BcryptCost             = 10
)

// AuthService owns password hashing/verification and session tokens. No other
// component touches plaintext passwords or the signing secret.
type AuthService struct {
	jwtSecret    string
	jwtAlgorithm string
}

func NewAuthService(jwtSecret, jwtAlgorithm string) *AuthService {
	return &AuthService{
		jwtSecret:    jwtSecret,
		jwtAlgorithm: jwtAlgorithm,
	}
}

// HashPassword hashes a password using bcrypt. bcrypt salts internally, so two
// calls on the same input produce distinct hashes that both verify.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash. A malformed or
// corrupted hash verifies as false rather than erroring out.
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// IssueSession mints a signed session token carrying the username claim. The
// token only exists after a successful authentication or registration.
func (s *AuthService) IssueSession(username string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(SessionExpirationHours * time.Hour)

	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "feedback",
			ID:        uuid.New().String(),
		},
	}

	var signingMethod jwt.SigningMethod
	switch s.jwtAlgorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		signingMethod = jwt.SigningMethodHS256
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateSession validates a session token and returns its claims. Any
// failure, including an unexpected signing method, yields ErrUnauthorized.
func (s *AuthService) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.jwtAlgorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.Username != "" {
		return claims, nil
	}
	return nil, domain.ErrUnauthorized
}

// SessionClaims is the session's single identity claim plus the standard
// token metadata.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
