package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskTitleEmpty    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title is too long (max 100 chars)")
	ErrTaskDescTooLong   = errors.New("task description is too long (max 500 chars)")
	ErrTaskInvalidUserID = errors.New("invalid user id")
)

// Task is a one-off item due on a single calendar day.
type Task struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Date        string    `json:"date" db:"date"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewTask(userID, title, description, date string) (*Task, error) {
	if userID == "" {
		return nil, ErrTaskInvalidUserID
	}

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return nil, ErrTaskTitleEmpty
	}
	if len(trimmedTitle) > MaxTitleLen {
		return nil, ErrTaskTitleTooLong
	}

	cleanDesc := strings.TrimSpace(description)
	if len(cleanDesc) > MaxDescLen {
		return nil, ErrTaskDescTooLong
	}

	if _, err := ParseDayKey(date); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       trimmedTitle,
		Description: cleanDesc,
		Date:        date,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (t *Task) SetCompleted(completed bool) {
	if t.Completed == completed {
		return
	}
	t.Completed = completed
	t.UpdatedAt = time.Now().UTC()
}
