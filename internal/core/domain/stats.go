package domain

import "time"

// DailyStat is one day of the scored window: the calendar day, its
// short display label and the completion percentage (always an
// integer in [0,100], 0 when nothing was scheduled).
type DailyStat struct {
	Date       string `json:"date"`
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

// WeekdayScore is a per-weekday aggregate over the window.
type WeekdayScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PeriodSummary is the full response of the stats endpoint: the daily
// series plus derived averages, gamification state and the heuristic
// insight/tip texts.
type PeriodSummary struct {
	TodayProgress    int         `json:"todayProgress"`
	ThisWeekProgress int         `json:"thisWeekProgress"`
	LastWeekProgress int         `json:"lastWeekProgress"`
	PeriodAverage    int         `json:"periodAverage"`
	TotalXP          int         `json:"totalXp"`
	CurrentXP        int         `json:"currentXp"`
	Level            int         `json:"level"`
	Streak           int         `json:"streak"`
	History          []DailyStat `json:"history"`
	Insight          string      `json:"insight"`
	Tips             []string    `json:"tips"`
	BestDay          string      `json:"bestDay"`
	WorstDay         string      `json:"worstDay"`
}

// StatsInput carries the parameters of one scoring request. Today is
// passed explicitly so the window is anchored to the caller's clock.
type StatsInput struct {
	UserID     string
	WindowDays int
	Today      time.Time
}

const (
	DefaultStatsWindow = 14
	MinStatsWindow     = 7
	MaxStatsWindow     = 30
)
