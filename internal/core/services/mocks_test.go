package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) ListByUser(ctx context.Context, userID, date string) ([]*domain.Task, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.Task, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHabitRepo struct {
	mock.Mock
}

func (m *MockHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHabitRepo) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	args := m.Called(ctx, id, current, longest)
	return args.Error(0)
}

type MockHabitLogRepo struct {
	mock.Mock
}

func (m *MockHabitLogRepo) Upsert(ctx context.Context, log *domain.HabitLog) (bool, error) {
	args := m.Called(ctx, log)
	return args.Bool(0), args.Error(1)
}

func (m *MockHabitLogRepo) Delete(ctx context.Context, habitID, date string) error {
	args := m.Called(ctx, habitID, date)
	return args.Error(0)
}

func (m *MockHabitLogRepo) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

func (m *MockHabitLogRepo) ListByUser(ctx context.Context, userID string) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

func (m *MockHabitLogRepo) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

type MockRoutineRepo struct {
	mock.Mock
}

func (m *MockRoutineRepo) Create(ctx context.Context, routine *domain.Routine) error {
	args := m.Called(ctx, routine)
	return args.Error(0)
}

func (m *MockRoutineRepo) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *MockRoutineRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Routine), args.Error(1)
}

func (m *MockRoutineRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoutineLogRepo struct {
	mock.Mock
}

func (m *MockRoutineLogRepo) Upsert(ctx context.Context, log *domain.RoutineLog) (bool, error) {
	args := m.Called(ctx, log)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoutineLogRepo) Delete(ctx context.Context, routineID, date string) error {
	args := m.Called(ctx, routineID, date)
	return args.Error(0)
}

func (m *MockRoutineLogRepo) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.RoutineLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoutineLog), args.Error(1)
}

type MockMoodRepo struct {
	mock.Mock
}

func (m *MockMoodRepo) Upsert(ctx context.Context, mood *domain.MoodLog) error {
	args := m.Called(ctx, mood)
	return args.Error(0)
}

func (m *MockMoodRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.MoodLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MoodLog), args.Error(1)
}
