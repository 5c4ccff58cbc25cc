package todo

import (
	"fmt"

	internalstrings "github.com/ameskill/td/internal/strings"
)

// Priority represents the importance level of a todo.
type Priority string

const (
	// PriorityHigh marks urgent tasks.
	PriorityHigh Priority = "high"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityLow marks tasks that can wait.
	PriorityLow Priority = "low"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority (high sorts first).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority normalizes and validates a user-supplied priority string.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeLowerTrimSpace(value))
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, value)
	}
	return priority, nil
}
