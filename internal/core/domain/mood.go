package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidMood = errors.New("invalid mood data")

// MoodLog stores one mood entry per user per calendar day. Logging a
// mood for a day that already has one replaces it.
type MoodLog struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Date      string    `json:"date" db:"date"`
	MoodType  string    `json:"mood_type" db:"mood_type"`
	Message   string    `json:"message,omitempty" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewMoodLog(userID, date, moodType, message string) (*MoodLog, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(moodType) == "" {
		return nil, ErrInvalidMood
	}
	if _, err := ParseDayKey(date); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &MoodLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		MoodType:  moodType,
		Message:   strings.TrimSpace(message),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
