package services

import (
	"context"
	"fmt"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

// XP awarded per completion, by item kind.
const (
	XPTaskCompleted    = 10
	XPHabitCompleted   = 20
	XPRoutineCompleted = 5
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

type UpdateProfileInput struct {
	UserID string
	Name   string
	Avatar string
}

func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.UpdateProfile(input.Name, input.Avatar)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("user service: update profile: %w", err)
	}

	return user, nil
}

// awardXP is called by the task/habit/routine services on completion.
// It is internal on purpose: the original deployment exposed XP as an
// open endpoint, which let clients grant themselves points.
func awardXP(ctx context.Context, repo domain.UserRepository, userID string, amount int) error {
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.AddXP(amount); err != nil {
		return err
	}

	if err := repo.Update(ctx, user); err != nil {
		return fmt.Errorf("award xp: %w", err)
	}

	return nil
}
