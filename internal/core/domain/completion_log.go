package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidLog = errors.New("invalid completion log data")

// HabitLog records that a habit was completed on a calendar day.
// The (habit_id, date) pair is unique: logging the same day twice is
// idempotent (upsert semantics at the repository level).
type HabitLog struct {
	HabitID   string    `json:"habit_id" db:"habit_id"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewHabitLog(habitID, date string) (*HabitLog, error) {
	if strings.TrimSpace(habitID) == "" {
		return nil, ErrInvalidLog
	}
	if _, err := ParseDayKey(date); err != nil {
		return nil, err
	}

	return &HabitLog{
		HabitID:   habitID,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// RoutineLog is the routine counterpart of HabitLog, with the same
// (routine_id, date) uniqueness.
type RoutineLog struct {
	RoutineID string    `json:"routine_id" db:"routine_id"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewRoutineLog(routineID, date string) (*RoutineLog, error) {
	if strings.TrimSpace(routineID) == "" {
		return nil, ErrInvalidLog
	}
	if _, err := ParseDayKey(date); err != nil {
		return nil, err
	}

	return &RoutineLog{
		RoutineID: routineID,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}, nil
}
