package workers

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type HabitLogRepository interface {
	ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitLog, error)
}

type StreakJob struct {
	HabitID string
}

// StreakWorker recomputes a habit's streak counters from its full log
// history whenever a completion is added or removed. Recomputing from
// source keeps the counters correct after un-logging a day, which a
// naive increment/decrement cannot do.
type StreakWorker struct {
	habitRepo HabitRepository
	logRepo   HabitLogRepository
	jobs      chan StreakJob
}

func NewStreakWorker(habitRepo HabitRepository, logRepo HabitLogRepository) *StreakWorker {
	return &StreakWorker{
		habitRepo: habitRepo,
		logRepo:   logRepo,
		jobs:      make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(habitID string) {
	select {
	case w.jobs <- StreakJob{HabitID: habitID}:
	default:
		log.Printf("Streak worker queue full! Dropping job for habit %s", habitID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	habit, err := w.habitRepo.GetByID(ctx, job.HabitID)
	if err != nil {
		log.Printf("Worker error fetching habit %s: %v", job.HabitID, err)
		return
	}

	logs, err := w.logRepo.ListByHabit(ctx, job.HabitID)
	if err != nil {
		log.Printf("Worker error fetching logs for %s: %v", job.HabitID, err)
		return
	}

	current, longest := calculateStreaks(logs, time.Now().UTC())

	if habit.CurrentStreak != current || habit.LongestStreak != longest {
		if err := w.habitRepo.UpdateStreaks(ctx, job.HabitID, current, longest); err != nil {
			log.Printf("Worker failed to update streaks for %s: %v", job.HabitID, err)
		} else {
			log.Printf("Streaks updated for %s: current=%d, longest=%d", habit.Title, current, longest)
		}
	}
}

// calculateStreaks walks the habit's unique completion days, newest
// first. The current streak is alive if the latest day is today or
// yesterday relative to now.
func calculateStreaks(logs []*domain.HabitLog, now time.Time) (int, int) {
	if len(logs) == 0 {
		return 0, 0
	}

	uniqueDays := make(map[string]bool, len(logs))
	var days []time.Time
	for _, l := range logs {
		if uniqueDays[l.Date] {
			continue
		}
		t, err := domain.ParseDayKey(l.Date)
		if err != nil {
			continue
		}
		uniqueDays[l.Date] = true
		days = append(days, t)
	}

	if len(days) == 0 {
		return 0, 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	today := now.Truncate(24 * time.Hour)

	current := 0
	if today.Sub(days[0]).Hours()/24 <= 1 {
		current = 1
		for i := 0; i < len(days)-1; i++ {
			if days[i].Sub(days[i+1]).Hours() == 24 {
				current++
			} else {
				break
			}
		}
	}

	longest := 0
	run := 1
	for i := 0; i < len(days)-1; i++ {
		if days[i].Sub(days[i+1]).Hours() == 24 {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	return current, longest
}
