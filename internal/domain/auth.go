package domain

import (
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when the admin password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin session.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// CredentialVerifier compares a plaintext password against the stored hash.
type CredentialVerifier interface {
	Compare(hash, password string) error
}

// AdminService defines the contract for admin authentication.
type AdminService interface {
	Login(password string) (token string, err error)
}
