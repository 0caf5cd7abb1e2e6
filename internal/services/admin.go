package services

import (
	"fmt"
	"time"

	"contacthub/internal/domain"
)

type adminService struct {
	passwordHash string
	credentials  domain.CredentialVerifier
	tokenIssuer  domain.TokenIssuer
	tokenExpiry  time.Duration
}

// NewAdminService creates an AdminService that checks the configured admin
// password hash and issues session tokens.
func NewAdminService(passwordHash string, credentials domain.CredentialVerifier, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AdminService {
	return &adminService{
		passwordHash: passwordHash,
		credentials:  credentials,
		tokenIssuer:  tokenIssuer,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *adminService) Login(password string) (string, error) {
	if s.passwordHash == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.credentials.Compare(s.passwordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue("admin", s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
