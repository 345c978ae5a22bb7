package services

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

// StatsService is the daily performance scoring engine. It aggregates
// scheduled items (tasks due per day, active habits, active routines)
// against recorded completions into a day-by-day percentage series,
// then derives the period summary with heuristic insights.
type StatsService struct {
	users       domain.UserRepository
	tasks       domain.TaskRepository
	habits      domain.HabitRepository
	routines    domain.RoutineRepository
	habitLogs   domain.HabitLogRepository
	routineLogs domain.RoutineLogRepository
}

func NewStatsService(
	users domain.UserRepository,
	tasks domain.TaskRepository,
	habits domain.HabitRepository,
	routines domain.RoutineRepository,
	habitLogs domain.HabitLogRepository,
	routineLogs domain.RoutineLogRepository,
) *StatsService {
	return &StatsService{
		users:       users,
		tasks:       tasks,
		habits:      habits,
		routines:    routines,
		habitLogs:   habitLogs,
		routineLogs: routineLogs,
	}
}

// windowData is everything one scoring request reads. All records are
// owner-filtered and range-filtered at the repository.
type windowData struct {
	user        *domain.User
	habits      []*domain.Habit
	routines    []*domain.Routine
	tasks       []*domain.Task
	habitLogs   []*domain.HabitLog
	routineLogs []*domain.RoutineLog
}

func (s *StatsService) fetchWindow(ctx context.Context, input domain.StatsInput) (*windowData, error) {
	today := input.Today.UTC()
	from := domain.DayKey(today.AddDate(0, 0, -(input.WindowDays - 1)))
	to := domain.DayKey(today)

	data := &windowData{}

	// The six reads are independent of one another; only the
	// aggregation needs all of them.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.users.GetByID(gctx, input.UserID)
		if err != nil {
			return err
		}
		data.user = user
		return nil
	})
	g.Go(func() error {
		habits, err := s.habits.ListByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("stats: list habits: %w", err)
		}
		data.habits = habits
		return nil
	})
	g.Go(func() error {
		routines, err := s.routines.ListByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("stats: list routines: %w", err)
		}
		data.routines = routines
		return nil
	})
	g.Go(func() error {
		tasks, err := s.tasks.ListByUserAndRange(gctx, input.UserID, from, to)
		if err != nil {
			return fmt.Errorf("stats: list tasks: %w", err)
		}
		data.tasks = tasks
		return nil
	})
	g.Go(func() error {
		logs, err := s.habitLogs.ListByUserAndRange(gctx, input.UserID, from, to)
		if err != nil {
			return fmt.Errorf("stats: list habit logs: %w", err)
		}
		data.habitLogs = logs
		return nil
	})
	g.Go(func() error {
		logs, err := s.routineLogs.ListByUserAndRange(gctx, input.UserID, from, to)
		if err != nil {
			return fmt.Errorf("stats: list routine logs: %w", err)
		}
		data.routineLogs = logs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

// buildSeries turns the fetched window into the ordered daily series,
// oldest day first, one entry per day, exactly WindowDays entries.
//
// Every active habit and routine counts as one expected occurrence on
// every day of the window, including days before it was created. This
// mirrors the historical behavior; counting from creation day would
// silently rewrite past percentages.
func buildSeries(input domain.StatsInput, data *windowData) []domain.DailyStat {
	type taskTally struct {
		total     int
		completed int
	}

	tasksByDate := make(map[string]taskTally)
	for _, t := range data.tasks {
		tally := tasksByDate[t.Date]
		tally.total++
		if t.Completed {
			tally.completed++
		}
		tasksByDate[t.Date] = tally
	}

	habitLogsByDate := make(map[string]int)
	for _, l := range data.habitLogs {
		habitLogsByDate[l.Date]++
	}

	routineLogsByDate := make(map[string]int)
	for _, l := range data.routineLogs {
		routineLogsByDate[l.Date]++
	}

	habitCount := len(data.habits)
	routineCount := len(data.routines)
	today := input.Today.UTC()

	series := make([]domain.DailyStat, 0, input.WindowDays)
	for i := input.WindowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := domain.DayKey(day)

		tally := tasksByDate[key]
		total := tally.total + habitCount + routineCount
		completed := tally.completed + habitLogsByDate[key] + routineLogsByDate[key]

		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(completed) / float64(total) * 100))
		}

		series = append(series, domain.DailyStat{
			Date:       key,
			Label:      domain.DayLabel(day),
			Percentage: percentage,
		})
	}

	return series
}

// DailySeries runs the aggregator alone: one DailyStat per day of the
// trailing window ending today, oldest first.
func (s *StatsService) DailySeries(ctx context.Context, input domain.StatsInput) ([]domain.DailyStat, error) {
	data, err := s.fetchWindow(ctx, input)
	if err != nil {
		return nil, err
	}
	return buildSeries(input, data), nil
}

// GetPeriodSummary runs the full pipeline: aggregation, insight
// generation and gamification fields. A user with no recorded
// activity gets an honest all-zero series, never synthetic history.
func (s *StatsService) GetPeriodSummary(ctx context.Context, input domain.StatsInput) (*domain.PeriodSummary, error) {
	data, err := s.fetchWindow(ctx, input)
	if err != nil {
		return nil, err
	}

	series := buildSeries(input, data)
	report := analyze(series)

	// The response streak is the best current streak across the
	// user's habits, maintained by the streak worker.
	streak := 0
	for _, h := range data.habits {
		if h.CurrentStreak > streak {
			streak = h.CurrentStreak
		}
	}

	return &domain.PeriodSummary{
		TodayProgress:    report.TodayProgress,
		ThisWeekProgress: report.ThisWeekAvg,
		LastWeekProgress: report.PriorWeekAvg,
		PeriodAverage:    report.PeriodAvg,
		TotalXP:          data.user.TotalXP,
		CurrentXP:        data.user.XP,
		Level:            data.user.Level,
		Streak:           streak,
		History:          series,
		Insight:          report.Insight,
		Tips:             report.Tips,
		BestDay:          report.BestDay,
		WorstDay:         report.WorstDay,
	}, nil
}
