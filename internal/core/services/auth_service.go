package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type AuthService struct {
	repo   domain.UserRepository
	tokens *TokenService
}

func NewAuthService(repo domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	id := uuid.NewString()
	user, err := domain.NewUser(id, input.Email, input.Name)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed token. A missing
// user and a wrong password both map to ErrInvalidCredentials so the
// response does not leak which one it was.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("auth service: %w", err)
	}

	return user, token, nil
}
