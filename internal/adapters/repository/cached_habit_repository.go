package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitListTTL = 30 * time.Minute

// CachedHabitRepository is a cache-aside decorator over the habit
// repository. The habit list is read on every dashboard and every
// stats request, so it gets a short-lived Redis cache; all cache
// failures fall through to the next repository.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{next: next, cache: cache}
}

func habitListKey(userID string) string {
	return "habits:" + userID
}

func (r *CachedHabitRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, habitListKey(userID)).Err(); err != nil {
		log.Printf("cache: invalidate failed for user %s: %v", userID, err)
	}
}

// readCached returns the cached habit list, or nil when the key is
// missing, unreadable, or holds something that no longer decodes.
func (r *CachedHabitRepository) readCached(ctx context.Context, key string) []*domain.Habit {
	raw, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("cache: read failed: %v", err)
		}
		return nil
	}

	var habits []*domain.Habit
	if err := json.Unmarshal(raw, &habits); err != nil {
		log.Printf("cache: dropping undecodable entry %s: %v", key, err)
		r.cache.Del(ctx, key)
		return nil
	}

	return habits
}

func (r *CachedHabitRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	key := habitListKey(userID)

	if habits := r.readCached(ctx, key); habits != nil {
		return habits, nil
	}

	habits, err := r.next.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if err := r.cache.Set(ctx, key, data, habitListTTL).Err(); err != nil {
			log.Printf("cache: write failed: %v", err)
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	habit, err := r.next.GetByID(ctx, id)
	if err == nil && habit != nil {
		defer r.invalidate(ctx, habit.UserID)
	}

	return r.next.Delete(ctx, id)
}

func (r *CachedHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	habit, err := r.next.GetByID(ctx, id)
	if err == nil && habit != nil {
		defer r.invalidate(ctx, habit.UserID)
	}

	return r.next.UpdateStreaks(ctx, id, current, longest)
}
