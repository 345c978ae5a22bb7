package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

// In-memory repositories backing unit tests and local development
// without Postgres. All of them are safe for concurrent use.

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; !ok {
		return domain.ErrUserNotFound
	}

	r.store[user.ID] = user
	return nil
}

type InMemoryTaskRepository struct {
	store map[string]*domain.Task

	mu sync.RWMutex
}

func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		store: make(map[string]*domain.Task),
	}
}

func (r *InMemoryTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[task.ID] = task
	return nil
}

func (r *InMemoryTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.store[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *InMemoryTaskRepository) ListByUser(ctx context.Context, userID, date string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range r.store {
		if t.UserID != userID {
			continue
		}
		if date != "" && t.Date != date {
			continue
		}
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *InMemoryTaskRepository) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range r.store {
		if t.UserID == userID && t.Date >= from && t.Date <= to {
			tasks = append(tasks, t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Date < tasks[j].Date
	})

	return tasks, nil
}

func (r *InMemoryTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}

	r.store[task.ID] = task
	return nil
}

func (r *InMemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrTaskNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[habit.ID] = habit
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (r *InMemoryHabitRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		if h.UserID == userID {
			habits = append(habits, h)
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habit, ok := r.store[id]
	if !ok {
		return domain.ErrHabitNotFound
	}

	return habit.UpdateStreak(current, longest)
}

type habitLogKey struct {
	habitID string
	date    string
}

type InMemoryHabitLogRepository struct {
	store  map[habitLogKey]*domain.HabitLog
	owners map[string]string // habitID -> userID, set by tests

	mu sync.RWMutex
}

func NewInMemoryHabitLogRepository() *InMemoryHabitLogRepository {
	return &InMemoryHabitLogRepository{
		store:  make(map[habitLogKey]*domain.HabitLog),
		owners: make(map[string]string),
	}
}

// SetOwner registers which user a habit belongs to so the
// owner-filtered listings work without a join.
func (r *InMemoryHabitLogRepository) SetOwner(habitID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[habitID] = userID
}

func (r *InMemoryHabitLogRepository) Upsert(ctx context.Context, log *domain.HabitLog) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := habitLogKey{habitID: log.HabitID, date: log.Date}
	if _, exists := r.store[key]; exists {
		return false, nil
	}

	r.store[key] = log
	return true, nil
}

func (r *InMemoryHabitLogRepository) Delete(ctx context.Context, habitID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, habitLogKey{habitID: habitID, date: date})
	return nil
}

func (r *InMemoryHabitLogRepository) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []*domain.HabitLog
	for key, l := range r.store {
		if key.habitID == habitID {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})

	return logs, nil
}

func (r *InMemoryHabitLogRepository) ListByUser(ctx context.Context, userID string) ([]*domain.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []*domain.HabitLog
	for key, l := range r.store {
		if r.owners[key.habitID] == userID {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})

	return logs, nil
}

func (r *InMemoryHabitLogRepository) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []*domain.HabitLog
	for key, l := range r.store {
		if r.owners[key.habitID] == userID && l.Date >= from && l.Date <= to {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})

	return logs, nil
}

type InMemoryRoutineRepository struct {
	store map[string]*domain.Routine

	mu sync.RWMutex
}

func NewInMemoryRoutineRepository() *InMemoryRoutineRepository {
	return &InMemoryRoutineRepository{
		store: make(map[string]*domain.Routine),
	}
}

func (r *InMemoryRoutineRepository) Create(ctx context.Context, routine *domain.Routine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[routine.ID] = routine
	return nil
}

func (r *InMemoryRoutineRepository) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routine, ok := r.store[id]
	if !ok {
		return nil, domain.ErrRoutineNotFound
	}
	return routine, nil
}

func (r *InMemoryRoutineRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var routines []*domain.Routine
	for _, routine := range r.store {
		if routine.UserID == userID {
			routines = append(routines, routine)
		}
	}

	sort.Slice(routines, func(i, j int) bool {
		return routines[i].SortOrder < routines[j].SortOrder
	})

	return routines, nil
}

func (r *InMemoryRoutineRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrRoutineNotFound
	}

	delete(r.store, id)
	return nil
}

type routineLogKey struct {
	routineID string
	date      string
}

type InMemoryRoutineLogRepository struct {
	store  map[routineLogKey]*domain.RoutineLog
	owners map[string]string

	mu sync.RWMutex
}

func NewInMemoryRoutineLogRepository() *InMemoryRoutineLogRepository {
	return &InMemoryRoutineLogRepository{
		store:  make(map[routineLogKey]*domain.RoutineLog),
		owners: make(map[string]string),
	}
}

func (r *InMemoryRoutineLogRepository) SetOwner(routineID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[routineID] = userID
}

func (r *InMemoryRoutineLogRepository) Upsert(ctx context.Context, log *domain.RoutineLog) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := routineLogKey{routineID: log.RoutineID, date: log.Date}
	if _, exists := r.store[key]; exists {
		return false, nil
	}

	r.store[key] = log
	return true, nil
}

func (r *InMemoryRoutineLogRepository) Delete(ctx context.Context, routineID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, routineLogKey{routineID: routineID, date: date})
	return nil
}

func (r *InMemoryRoutineLogRepository) ListByUserAndRange(ctx context.Context, userID, from, to string) ([]*domain.RoutineLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []*domain.RoutineLog
	for key, l := range r.store {
		if r.owners[key.routineID] == userID && l.Date >= from && l.Date <= to {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})

	return logs, nil
}

type moodKey struct {
	userID string
	date   string
}

type InMemoryMoodLogRepository struct {
	store map[moodKey]*domain.MoodLog

	mu sync.RWMutex
}

func NewInMemoryMoodLogRepository() *InMemoryMoodLogRepository {
	return &InMemoryMoodLogRepository{
		store: make(map[moodKey]*domain.MoodLog),
	}
}

func (r *InMemoryMoodLogRepository) Upsert(ctx context.Context, mood *domain.MoodLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[moodKey{userID: mood.UserID, date: mood.Date}] = mood
	return nil
}

func (r *InMemoryMoodLogRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.MoodLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var moods []*domain.MoodLog
	for key, m := range r.store {
		if key.userID == userID {
			moods = append(moods, m)
		}
	}

	sort.Slice(moods, func(i, j int) bool {
		return moods[i].Date > moods[j].Date
	})

	if len(moods) > limit {
		moods = moods[:limit]
	}

	return moods, nil
}
