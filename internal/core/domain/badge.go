package domain

const (
	BadgeCategoryStreak  = "streak"
	BadgeCategoryVolume  = "volume"
	BadgeCategorySpecial = "special"
)

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// BadgeStatus pairs a catalog badge with whether the user earned it.
type BadgeStatus struct {
	Badge
	Earned bool `json:"earned"`
}

// BadgeCatalog is the static achievement catalog. Earned state is
// derived from logs and streaks at request time, never persisted.
var BadgeCatalog = []Badge{
	{ID: "streak_3", Name: "Consistency Starter", Description: "Maintain a 3-day streak", Icon: "🌱", Category: BadgeCategoryStreak},
	{ID: "streak_7", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Category: BadgeCategoryStreak},
	{ID: "streak_30", Name: "Habit Master", Description: "Maintain a 30-day streak", Icon: "👑", Category: BadgeCategoryStreak},
	{ID: "early_bird", Name: "Early Bird", Description: "Complete a habit before 8 AM", Icon: "🌅", Category: BadgeCategorySpecial},
	{ID: "night_owl", Name: "Night Owl", Description: "Complete a habit after 10 PM", Icon: "🦉", Category: BadgeCategorySpecial},
	{ID: "first_step", Name: "First Step", Description: "Complete your first habit ever", Icon: "🦶", Category: BadgeCategoryVolume},
	{ID: "habits_100", Name: "Centurion", Description: "Complete 100 total habits", Icon: "💯", Category: BadgeCategoryVolume},
}
