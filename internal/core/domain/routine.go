package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRoutineTitleEmpty    = errors.New("routine title cannot be empty")
	ErrRoutineTitleTooLong  = errors.New("routine title is too long (max 100 chars)")
	ErrRoutineInvalidUserID = errors.New("invalid user id")
)

const DefaultRoutineTime = "Daily"

// Routine behaves like a habit for scoring purposes: one expected
// occurrence per day, completions recorded as RoutineLog rows. The
// time label ("Morning", "18:00", "Daily") is display-only.
type Routine struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	TimeLabel   string    `json:"time" db:"time_label"`
	Description string    `json:"description,omitempty" db:"description"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewRoutine(userID, title, timeLabel, description string) (*Routine, error) {
	if userID == "" {
		return nil, ErrRoutineInvalidUserID
	}

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return nil, ErrRoutineTitleEmpty
	}
	if len(trimmedTitle) > MaxTitleLen {
		return nil, ErrRoutineTitleTooLong
	}

	if timeLabel == "" {
		timeLabel = DefaultRoutineTime
	}

	now := time.Now().UTC()
	return &Routine{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       trimmedTitle,
		TimeLabel:   timeLabel,
		Description: strings.TrimSpace(description),
		SortOrder:   99,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
