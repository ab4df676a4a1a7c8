package service

import (
	"golang-stock-catalog/internal/api/config"
	"golang-stock-catalog/internal/entity"
)

// AuthService defines the interface for the static credential check.
type AuthService interface {
	Login(email, password string) error
}

// NewAuthService creates an auth service bound to the configured credential
// pair.
func NewAuthService(cfg config.Auth) AuthService {
	return &authService{cfg: cfg}
}

type authService struct {
	cfg config.Auth
}

// Login validates the credential pair. No session or token is issued.
func (s *authService) Login(email, password string) error {
	if email != s.cfg.Email {
		return entity.ErrEmailNotFound
	}
	if password != s.cfg.Password {
		return entity.ErrInvalidPassword
	}
	return nil
}
