package services

import (
	"context"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
	"github.com/focusflow/focusflow-engine/internal/core/workers"
)

type HabitService struct {
	repo   domain.HabitRepository
	logs   domain.HabitLogRepository
	users  domain.UserRepository
	worker *workers.StreakWorker
}

func NewHabitService(repo domain.HabitRepository, logs domain.HabitLogRepository, users domain.UserRepository, worker *workers.StreakWorker) *HabitService {
	return &HabitService{
		repo:   repo,
		logs:   logs,
		users:  users,
		worker: worker,
	}
}

type CreateHabitInput struct {
	UserID      string
	Title       string
	Emoji       string
	Color       string
	Description string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.UserID, input.Title, input.Emoji, input.Color, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.repo.ListByUser(ctx, userID)
}

type ToggleHabitLogInput struct {
	HabitID   string
	UserID    string
	Date      string
	Completed bool
}

// ToggleLog records or removes a day's completion. Re-logging an
// already logged day is idempotent and does not award XP twice.
// Either direction enqueues a streak recompute.
func (s *HabitService) ToggleLog(ctx context.Context, input ToggleHabitLogInput) error {
	habit, err := s.repo.GetByID(ctx, input.HabitID)
	if err != nil {
		return err
	}
	if habit.UserID != input.UserID {
		return domain.ErrHabitNotFound
	}

	if input.Completed {
		log, err := domain.NewHabitLog(input.HabitID, input.Date)
		if err != nil {
			return err
		}
		inserted, err := s.logs.Upsert(ctx, log)
		if err != nil {
			return err
		}
		if inserted {
			if err := awardXP(ctx, s.users, input.UserID, XPHabitCompleted); err != nil {
				return err
			}
		}
	} else {
		if err := s.logs.Delete(ctx, input.HabitID, input.Date); err != nil {
			return err
		}
	}

	s.worker.Enqueue(input.HabitID)

	return nil
}

func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if habit.UserID != userID {
		return domain.ErrHabitNotFound
	}

	return s.repo.Delete(ctx, id)
}
