package services

import (
	"context"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

const (
	earlyBirdHour = 8
	nightOwlHour  = 22
	centurionGoal = 100
)

type BadgeService struct {
	habits domain.HabitRepository
	logs   domain.HabitLogRepository
}

func NewBadgeService(habits domain.HabitRepository, logs domain.HabitLogRepository) *BadgeService {
	return &BadgeService{
		habits: habits,
		logs:   logs,
	}
}

// Evaluate returns the catalog with earned state computed from the
// user's habit streaks and completion logs.
func (s *BadgeService) Evaluate(ctx context.Context, userID string) ([]domain.BadgeStatus, error) {
	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bestStreak := 0
	for _, h := range habits {
		if h.LongestStreak > bestStreak {
			bestStreak = h.LongestStreak
		}
	}

	earlyBird := false
	nightOwl := false
	for _, l := range logs {
		hour := l.CreatedAt.UTC().Hour()
		if hour < earlyBirdHour {
			earlyBird = true
		}
		if hour >= nightOwlHour {
			nightOwl = true
		}
	}

	earned := map[string]bool{
		"streak_3":   bestStreak >= 3,
		"streak_7":   bestStreak >= 7,
		"streak_30":  bestStreak >= 30,
		"early_bird": earlyBird,
		"night_owl":  nightOwl,
		"first_step": len(logs) >= 1,
		"habits_100": len(logs) >= centurionGoal,
	}

	statuses := make([]domain.BadgeStatus, 0, len(domain.BadgeCatalog))
	for _, b := range domain.BadgeCatalog {
		statuses = append(statuses, domain.BadgeStatus{
			Badge:  b,
			Earned: earned[b.ID],
		})
	}

	return statuses, nil
}
