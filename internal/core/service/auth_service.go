package service

import (
	"context"
	"errors"
	"time"

	"github.com/lunchbox/catering-api/internal/core/domain"
	"github.com/lunchbox/catering-api/internal/core/ports"
)

// AuthService implements registration and login on top of the user store,
// the password hasher and the token service. It holds no mutable state, so
// concurrent requests need no coordination.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a parent account for a new email and returns a fresh
// session token alongside the stored user. The pre-insert lookup gives the
// common duplicate a clean error; the store's uniqueness constraint catches
// the concurrent case, and both surface as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (string, *domain.User, error) {
	if fullName == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}
	if created == nil {
		return "", nil, domain.ErrUserCreateFailed
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies credentials and returns a fresh session token. Every
// failure path returns the same domain.ErrInvalidCredentials so a caller
// cannot tell an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.PasswordHash == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
