package services

import (
	"context"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type RoutineService struct {
	repo  domain.RoutineRepository
	logs  domain.RoutineLogRepository
	users domain.UserRepository
}

func NewRoutineService(repo domain.RoutineRepository, logs domain.RoutineLogRepository, users domain.UserRepository) *RoutineService {
	return &RoutineService{
		repo:  repo,
		logs:  logs,
		users: users,
	}
}

type CreateRoutineInput struct {
	UserID      string
	Title       string
	TimeLabel   string
	Description string
}

func (s *RoutineService) Create(ctx context.Context, input CreateRoutineInput) (*domain.Routine, error) {
	routine, err := domain.NewRoutine(input.UserID, input.Title, input.TimeLabel, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, routine); err != nil {
		return nil, err
	}

	return routine, nil
}

func (s *RoutineService) ListByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	return s.repo.ListByUser(ctx, userID)
}

type ToggleRoutineLogInput struct {
	RoutineID string
	UserID    string
	Date      string
	Completed bool
}

func (s *RoutineService) ToggleLog(ctx context.Context, input ToggleRoutineLogInput) error {
	routine, err := s.repo.GetByID(ctx, input.RoutineID)
	if err != nil {
		return err
	}
	if routine.UserID != input.UserID {
		return domain.ErrRoutineNotFound
	}

	if input.Completed {
		log, err := domain.NewRoutineLog(input.RoutineID, input.Date)
		if err != nil {
			return err
		}
		inserted, err := s.logs.Upsert(ctx, log)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		return awardXP(ctx, s.users, input.UserID, XPRoutineCompleted)
	}

	return s.logs.Delete(ctx, input.RoutineID, input.Date)
}

func (s *RoutineService) Delete(ctx context.Context, id, userID string) error {
	routine, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if routine.UserID != userID {
		return domain.ErrRoutineNotFound
	}

	return s.repo.Delete(ctx, id)
}
