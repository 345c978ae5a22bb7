package services

import (
	"context"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

const defaultMoodHistory = 30

type MoodService struct {
	repo domain.MoodLogRepository
}

func NewMoodService(repo domain.MoodLogRepository) *MoodService {
	return &MoodService{repo: repo}
}

type LogMoodInput struct {
	UserID   string
	Date     string
	MoodType string
	Message  string
}

func (s *MoodService) Log(ctx context.Context, input LogMoodInput) (*domain.MoodLog, error) {
	mood, err := domain.NewMoodLog(input.UserID, input.Date, input.MoodType, input.Message)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, mood); err != nil {
		return nil, err
	}

	return mood, nil
}

func (s *MoodService) Recent(ctx context.Context, userID string) ([]*domain.MoodLog, error) {
	return s.repo.ListRecentByUser(ctx, userID, defaultMoodHistory)
}
