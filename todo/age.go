package todo

import (
	"time"

	internalage "github.com/ameskill/td/internal/age"
)

// AgeData computes the display age and whether timing data exists.
func AgeData(item Todo, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// DueData returns the whole days until the due date and whether one is
// set. Negative values mean the task is overdue.
func DueData(item Todo, now time.Time) (int, bool) {
	if item.DueDate == nil {
		return 0, false
	}
	return item.DueDate.DaysUntil(now), true
}
