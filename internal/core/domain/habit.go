package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitTitleEmpty    = errors.New("habit title cannot be empty")
	ErrHabitTitleTooLong  = errors.New("habit title is too long (max 100 chars)")
	ErrHabitDescTooLong   = errors.New("habit description is too long (max 500 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrInvalidColor       = errors.New("invalid color format (must be #RRGGBB)")
	ErrInvalidStreak      = errors.New("streak cannot be negative")
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const (
	DefaultEmoji = "✅"
	MaxTitleLen  = 100
	MaxDescLen   = 500
)

// Habit is a recurring item. It has no due date of its own: every
// active habit is expected once per day, and completions are recorded
// as HabitLog rows keyed by calendar day.
type Habit struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Title         string    `json:"title" db:"title"`
	Emoji         string    `json:"emoji" db:"emoji"`
	Color         string    `json:"color,omitempty" db:"color"`
	Description   string    `json:"description,omitempty" db:"description"`
	CurrentStreak int       `json:"current_streak" db:"current_streak"`
	LongestStreak int       `json:"longest_streak" db:"longest_streak"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func NewHabit(userID, title, emoji, color, description string) (*Habit, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return nil, ErrHabitTitleEmpty
	}
	if len(trimmedTitle) > MaxTitleLen {
		return nil, ErrHabitTitleTooLong
	}

	cleanDesc := strings.TrimSpace(description)
	if len(cleanDesc) > MaxDescLen {
		return nil, ErrHabitDescTooLong
	}

	if color != "" && !colorRegex.MatchString(color) {
		return nil, ErrInvalidColor
	}

	if emoji == "" {
		emoji = DefaultEmoji
	}

	now := time.Now().UTC()
	return &Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       trimmedTitle,
		Emoji:       emoji,
		Color:       color,
		Description: cleanDesc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateStreak replaces the stored streak counters. Streaks are
// recomputed from logs by the background worker, never incremented
// blindly on each check-in.
func (h *Habit) UpdateStreak(current, longest int) error {
	if current < 0 || longest < 0 {
		return ErrInvalidStreak
	}
	h.CurrentStreak = current
	h.LongestStreak = longest
	h.UpdatedAt = time.Now().UTC()
	return nil
}
