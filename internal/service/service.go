package service

import (
	"context"
	"time"

	"autfiles/internal/models"
	"autfiles/internal/repository"
)

// Authorization covers the whole authentication protocol: credential
// validation, record creation, and token mint/verify.
type Authorization interface {
	SignUp(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ParseToken(accessToken string) (string, error)
}

// Root Service aggregates sub-services behind embedded interfaces so
// handlers depend on one wiring point.
type Service struct {
	Authorization
}

// NewService wires the repository layer into concrete services. The signing
// secret and token TTL come from deployment configuration and are fixed for
// the process lifetime.
func NewService(repos *repository.Repository, signingSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingSecret, tokenTTL),
	}
}
