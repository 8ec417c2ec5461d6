package core

// DefaultWeeklyGoal applies when no goal was ever set.
const DefaultWeeklyGoal = 500.0

// GoalProgress compares weekly income against the weekly goal.
// Ratio is the true percentage and may exceed 100; Percent is clamped to
// [0, 100] for display (progress bars).
type GoalProgress struct {
	Ratio   float64 `json:"ratio"`
	Percent float64 `json:"percent"`
}

// Progress derives goal progress from weekly income. Goals are validated
// to be positive where they are set; a non-positive goal here yields zero
// progress rather than a division by zero.
func Progress(weeklyIncome, goal float64) GoalProgress {
	if goal <= 0 {
		return GoalProgress{}
	}
	ratio := weeklyIncome / goal * 100
	percent := ratio
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return GoalProgress{Ratio: ratio, Percent: percent}
}
