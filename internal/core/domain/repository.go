package domain

import (
	"context"
	"errors"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrRoutineNotFound = errors.New("routine not found")
	ErrUnauthorized    = errors.New("resource does not belong to user")
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile and XP changes.
	Update(ctx context.Context, user *User) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)

	// ListByUser returns the user's tasks, optionally filtered to a
	// single day key (empty date means all).
	ListByUser(ctx context.Context, userID, date string) ([]*Task, error)

	// ListByUserAndRange returns tasks due within [from, to] inclusive,
	// compared as day keys.
	ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*Task, error)

	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id string) error
}

type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error
	GetByID(ctx context.Context, id string) (*Habit, error)
	ListByUser(ctx context.Context, userID string) ([]*Habit, error)
	Delete(ctx context.Context, id string) error

	// UpdateStreaks stores recomputed streak counters for a habit.
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type HabitLogRepository interface {
	// Upsert records a completion. Duplicate (habit, day) pairs are a
	// no-op; the bool reports whether a new row was actually written,
	// so callers can tell a first completion from a repeat.
	Upsert(ctx context.Context, log *HabitLog) (bool, error)

	// Delete removes the log for one (habit, day) pair if present.
	Delete(ctx context.Context, habitID, date string) error

	// ListByHabit returns every log of one habit (streak recomputation).
	ListByHabit(ctx context.Context, habitID string) ([]*HabitLog, error)

	// ListByUser returns every log across the user's habits (badges).
	ListByUser(ctx context.Context, userID string) ([]*HabitLog, error)

	// ListByUserAndRange returns logs across the user's habits with day
	// keys in [from, to] inclusive.
	ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*HabitLog, error)
}

type RoutineRepository interface {
	Create(ctx context.Context, routine *Routine) error
	GetByID(ctx context.Context, id string) (*Routine, error)
	ListByUser(ctx context.Context, userID string) ([]*Routine, error)
	Delete(ctx context.Context, id string) error
}

type RoutineLogRepository interface {
	// Upsert behaves like HabitLogRepository.Upsert: duplicate
	// (routine, day) pairs are a no-op and the bool reports insertion.
	Upsert(ctx context.Context, log *RoutineLog) (bool, error)
	Delete(ctx context.Context, routineID, date string) error
	ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*RoutineLog, error)
}

type MoodLogRepository interface {
	// Upsert stores a mood for a (user, day) pair, replacing any
	// existing entry for that day.
	Upsert(ctx context.Context, mood *MoodLog) error

	// ListRecentByUser returns the latest entries, newest first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*MoodLog, error)
}
