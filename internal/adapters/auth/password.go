package auth

import (
	"golang.org/x/crypto/bcrypt"

	"contacthub/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a CredentialVerifier that compares bcrypt hashes.
func NewBcryptVerifier() domain.CredentialVerifier {
	return &bcryptVerifier{}
}

func (v *bcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
