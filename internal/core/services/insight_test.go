package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

// seriesFor builds a 14-day series ending Thursday 2024-03-14, with
// each day's percentage chosen by weekday.
func seriesFor(byWeekday map[time.Weekday]int) []domain.DailyStat {
	end := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	series := make([]domain.DailyStat, 0, 14)
	for i := 13; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		series = append(series, domain.DailyStat{
			Date:       domain.DayKey(day),
			Label:      domain.DayLabel(day),
			Percentage: byWeekday[day.Weekday()],
		})
	}
	return series
}

func flatSeries(percentage int) []domain.DailyStat {
	m := make(map[time.Weekday]int)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		m[wd] = percentage
	}
	return seriesFor(m)
}

func TestAnalyze_Averages(t *testing.T) {
	report := analyze(flatSeries(70))

	assert.Equal(t, 70, report.TodayProgress)
	assert.Equal(t, 70, report.ThisWeekAvg)
	assert.Equal(t, 70, report.PriorWeekAvg)
	assert.Equal(t, 70, report.PeriodAvg)
}

func TestAnalyze_TipRules(t *testing.T) {
	t.Run("Weekend slump fires when weekends trail by more than 15", func(t *testing.T) {
		report := analyze(seriesFor(map[time.Weekday]int{
			time.Sunday: 20, time.Saturday: 20,
			time.Monday: 70, time.Tuesday: 70, time.Wednesday: 70, time.Thursday: 70, time.Friday: 70,
		}))

		require.NotEmpty(t, report.Tips)
		assert.Contains(t, report.Tips[0], "Weekend Slump")
	})

	t.Run("Weekend warrior fires when weekends lead by more than 15", func(t *testing.T) {
		report := analyze(seriesFor(map[time.Weekday]int{
			time.Sunday: 95, time.Saturday: 95,
			time.Monday: 50, time.Tuesday: 50, time.Wednesday: 50, time.Thursday: 50, time.Friday: 50,
		}))

		require.NotEmpty(t, report.Tips)
		assert.Contains(t, report.Tips[0], "Weekend Warrior")
	})

	t.Run("Struggle day names the weekday and its score", func(t *testing.T) {
		// Only Wednesday dips; the weekend/weekday split stays within
		// the 15-point band, so the struggle tip is the only match.
		report := analyze(seriesFor(map[time.Weekday]int{
			time.Sunday: 70, time.Saturday: 70,
			time.Monday: 70, time.Tuesday: 70, time.Wednesday: 45, time.Thursday: 70, time.Friday: 70,
		}))

		require.Len(t, report.Tips, 1)
		assert.Contains(t, report.Tips[0], "Wednesday")
		assert.Contains(t, report.Tips[0], "45%")
		assert.Equal(t, "Wednesday", report.WorstDay)
	})

	t.Run("Power day fires above 90", func(t *testing.T) {
		report := analyze(seriesFor(map[time.Weekday]int{
			time.Sunday: 80, time.Saturday: 80,
			time.Monday: 95, time.Tuesday: 80, time.Wednesday: 80, time.Thursday: 80, time.Friday: 80,
		}))

		require.Len(t, report.Tips, 1)
		assert.Contains(t, report.Tips[0], "Power Day")
		assert.Contains(t, report.Tips[0], "Monday")
	})

	t.Run("Tips are capped at three in priority order", func(t *testing.T) {
		// Slump, struggle and power all apply; the trend rule would
		// too but the cap cuts the list first.
		report := analyze(seriesFor(map[time.Weekday]int{
			time.Sunday: 40, time.Saturday: 40,
			time.Monday: 95, time.Tuesday: 95, time.Wednesday: 95, time.Thursday: 95, time.Friday: 95,
		}))

		require.Len(t, report.Tips, 3)
		assert.Contains(t, report.Tips[0], "Weekend Slump")
		assert.Contains(t, report.Tips[1], "Struggle Day")
		assert.Contains(t, report.Tips[2], "Power Day")
	})

	t.Run("Steady state fallback when nothing fires", func(t *testing.T) {
		report := analyze(flatSeries(75))

		require.Len(t, report.Tips, 1)
		assert.Contains(t, report.Tips[0], "Steady State")
	})
}

func TestAnalyze_Headline(t *testing.T) {
	t.Run("Elite consistency wins over growth", func(t *testing.T) {
		report := analyze(flatSeries(85))
		assert.Contains(t, report.Insight, "Elite Consistency")
	})

	t.Run("Growth when this week jumped more than 10", func(t *testing.T) {
		// Prior week 40, this week 60.
		end := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
		series := make([]domain.DailyStat, 0, 14)
		for i := 13; i >= 0; i-- {
			day := end.AddDate(0, 0, -i)
			p := 40
			if i < 7 {
				p = 60
			}
			series = append(series, domain.DailyStat{Date: domain.DayKey(day), Percentage: p})
		}

		report := analyze(series)
		assert.Equal(t, 60, report.ThisWeekAvg)
		assert.Equal(t, 40, report.PriorWeekAvg)
		assert.Contains(t, report.Insight, "Significant Growth")
	})

	t.Run("Needs attention when this week dropped more than 10", func(t *testing.T) {
		end := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
		series := make([]domain.DailyStat, 0, 14)
		for i := 13; i >= 0; i-- {
			day := end.AddDate(0, 0, -i)
			p := 70
			if i < 7 {
				p = 50
			}
			series = append(series, domain.DailyStat{Date: domain.DayKey(day), Percentage: p})
		}

		report := analyze(series)
		assert.Contains(t, report.Insight, "Needs Attention")
	})

	t.Run("Balanced workflow otherwise", func(t *testing.T) {
		report := analyze(flatSeries(70))
		assert.Contains(t, report.Insight, "Balanced workflow")
	})
}

func TestAnalyze_WeekdayRanking(t *testing.T) {
	t.Run("Ties resolve to the earlier weekday", func(t *testing.T) {
		report := analyze(flatSeries(70))

		assert.Equal(t, "Sunday", report.BestDay)
		assert.Equal(t, "Saturday", report.WorstDay)
	})

	t.Run("Each day lands in exactly one bucket", func(t *testing.T) {
		buckets := bucketByWeekday(flatSeries(70))

		total := 0
		for _, b := range buckets {
			total += b.total
		}
		assert.Equal(t, 14*100, total)
	})
}

func TestAnalyze_EmptySeries(t *testing.T) {
	report := analyze(nil)

	assert.Equal(t, 0, report.TodayProgress)
	assert.Equal(t, 0, report.PeriodAvg)
	require.Len(t, report.Tips, 1)
	assert.Contains(t, report.Tips[0], "Steady State")
	assert.Contains(t, report.Insight, "Balanced workflow")
}
