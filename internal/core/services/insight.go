package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

// insightReport is the derived half of a PeriodSummary: averages,
// weekday extremes and the heuristic texts.
type insightReport struct {
	TodayProgress int
	ThisWeekAvg   int
	PriorWeekAvg  int
	PeriodAvg     int
	BestDay       string
	WorstDay      string
	Insight       string
	Tips          []string
}

// weekMetrics is what the tip and headline rules are evaluated over.
type weekMetrics struct {
	ThisWeekAvg  int
	PriorWeekAvg int
	PeriodAvg    int
	WeekendScore int
	WeekdayScore int
	Best         domain.WeekdayScore
	Worst        domain.WeekdayScore
}

const maxTips = 3

// tipRules is evaluated in order; each fires at most once and the
// total is capped at maxTips. The order encodes priority, so keep the
// weekend split first and the trend check last.
var tipRules = []struct {
	applies func(m weekMetrics) bool
	render  func(m weekMetrics) string
}{
	{
		applies: func(m weekMetrics) bool {
			return abs(m.WeekendScore-m.WeekdayScore) > 15 && m.WeekendScore < m.WeekdayScore
		},
		render: func(m weekMetrics) string {
			return "📉 Weekend Slump Detected: Your habits drop significantly on weekends. Try setting a specific 'Weekend Routine' that is lighter but keeps the streak alive."
		},
	},
	{
		applies: func(m weekMetrics) bool {
			return abs(m.WeekendScore-m.WeekdayScore) > 15 && m.WeekendScore >= m.WeekdayScore
		},
		render: func(m weekMetrics) string {
			return "🔥 Weekend Warrior: You do great on weekends! Try to bring some of that free-time energy into your Monday routine."
		},
	},
	{
		applies: func(m weekMetrics) bool { return m.Worst.Score < 60 },
		render: func(m weekMetrics) string {
			return fmt.Sprintf("🗓️ Struggle Day: %s seems to be your toughest day (%d%%). Plan your easiest tasks for %ss to ensure a win.", m.Worst.Name, m.Worst.Score, m.Worst.Name)
		},
	},
	{
		applies: func(m weekMetrics) bool { return m.Best.Score > 90 },
		render: func(m weekMetrics) string {
			return fmt.Sprintf("🚀 Power Day: You absolutely crush it on %ss (%d%%). Schedule your hardest work then!", m.Best.Name, m.Best.Score)
		},
	},
	{
		applies: func(m weekMetrics) bool { return m.ThisWeekAvg > m.PeriodAvg+10 },
		render: func(m weekMetrics) string {
			return "📈 Trending Up: Your recent week is much better than your period average. Whatever change you made is working!"
		},
	},
}

const fallbackTip = "🤖 Steady State: Your performance is very consistent. Challenge yourself by adding one small new habit."

// headlineRules is evaluated in order, first match wins. The last
// rule always applies.
var headlineRules = []struct {
	applies func(m weekMetrics) bool
	message string
}{
	{
		applies: func(m weekMetrics) bool { return m.ThisWeekAvg >= 80 },
		message: "🌟 Elite Consistency. You are performing in the top tier of habit builders.",
	},
	{
		applies: func(m weekMetrics) bool { return m.ThisWeekAvg-m.PriorWeekAvg > 10 },
		message: "📈 Significant Growth. You've turned a corner this week!",
	},
	{
		applies: func(m weekMetrics) bool { return m.ThisWeekAvg-m.PriorWeekAvg < -10 },
		message: "📉 Needs Attention. Let's get you back on track before the streak cools off.",
	},
	{
		applies: func(m weekMetrics) bool { return true },
		message: "⚖️ Balanced workflow. You are maintaining a healthy routine.",
	},
}

// analyze derives the insight report from a daily series. Callers
// should supply at least 14 days for a meaningful week-over-week
// comparison; shorter series are averaged over what exists.
func analyze(series []domain.DailyStat) insightReport {
	report := insightReport{}
	if len(series) == 0 {
		report.Insight = headlineRules[len(headlineRules)-1].message
		report.Tips = []string{fallbackTip}
		return report
	}

	report.TodayProgress = series[len(series)-1].Percentage

	thisWeek := lastN(series, 7)
	priorWeek := sliceBetween(series, len(series)-14, len(series)-7)

	m := weekMetrics{
		ThisWeekAvg:  roundMean(thisWeek),
		PriorWeekAvg: roundMean(priorWeek),
		PeriodAvg:    roundMean(series),
	}

	byWeekday := bucketByWeekday(series)
	m.Best, m.Worst = bestAndWorst(byWeekday)
	m.WeekendScore = combinedScore(byWeekday, time.Saturday, time.Sunday)
	m.WeekdayScore = combinedScore(byWeekday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

	report.ThisWeekAvg = m.ThisWeekAvg
	report.PriorWeekAvg = m.PriorWeekAvg
	report.PeriodAvg = m.PeriodAvg
	report.BestDay = m.Best.Name
	report.WorstDay = m.Worst.Name

	for _, rule := range tipRules {
		if len(report.Tips) == maxTips {
			break
		}
		if rule.applies(m) {
			report.Tips = append(report.Tips, rule.render(m))
		}
	}
	if len(report.Tips) == 0 {
		report.Tips = []string{fallbackTip}
	}

	for _, rule := range headlineRules {
		if rule.applies(m) {
			report.Insight = rule.message
			break
		}
	}

	return report
}

// weekdayBucket accumulates 100 expected points per occurrence of a
// weekday and the actual percentage as earned points, so each day of
// the window contributes to exactly one bucket.
type weekdayBucket struct {
	total     int
	completed int
}

func bucketByWeekday(series []domain.DailyStat) [7]weekdayBucket {
	var buckets [7]weekdayBucket
	for _, day := range series {
		t, err := domain.ParseDayKey(day.Date)
		if err != nil {
			continue
		}
		wd := int(t.Weekday())
		buckets[wd].total += 100
		buckets[wd].completed += day.Percentage
	}
	return buckets
}

func (b weekdayBucket) score() int {
	if b.total == 0 {
		return 0
	}
	return int(math.Round(float64(b.completed) / float64(b.total) * 100))
}

// bestAndWorst ranks the weekday buckets descending by score. The
// sort is stable over Sunday..Saturday order, so ties resolve to the
// earlier weekday.
func bestAndWorst(buckets [7]weekdayBucket) (best, worst domain.WeekdayScore) {
	ranking := make([]domain.WeekdayScore, 0, 7)
	for wd := 0; wd < 7; wd++ {
		ranking = append(ranking, domain.WeekdayScore{
			Name:  time.Weekday(wd).String(),
			Score: buckets[wd].score(),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	return ranking[0], ranking[len(ranking)-1]
}

func combinedScore(buckets [7]weekdayBucket, days ...time.Weekday) int {
	combined := weekdayBucket{}
	for _, d := range days {
		combined.total += buckets[int(d)].total
		combined.completed += buckets[int(d)].completed
	}
	return combined.score()
}

func roundMean(series []domain.DailyStat) int {
	if len(series) == 0 {
		return 0
	}
	sum := 0
	for _, day := range series {
		sum += day.Percentage
	}
	return int(math.Round(float64(sum) / float64(len(series))))
}

func lastN(series []domain.DailyStat, n int) []domain.DailyStat {
	if len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}

func sliceBetween(series []domain.DailyStat, from, to int) []domain.DailyStat {
	if from < 0 {
		from = 0
	}
	if to < from {
		to = from
	}
	return series[from:to]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
