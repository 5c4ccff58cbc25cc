package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTask is returned when a task description is empty.
	ErrEmptyTask = errors.New("task cannot be empty")

	// ErrInvalidPriority is returned when a priority is not one of high,
	// medium, low.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDate is returned when a date or timestamp fails to parse.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("todo not found")

	// ErrAlreadyDone is returned when marking an already-completed record
	// done again.
	ErrAlreadyDone = errors.New("todo is already completed")

	// ErrCorruptFile is returned when the todo file exists but cannot be
	// decoded. The file is never repaired or discarded automatically.
	ErrCorruptFile = errors.New("todo file is corrupt")

	// ErrSaveFailed is returned when persisting the store fails. The
	// previously persisted state is left untouched.
	ErrSaveFailed = errors.New("could not save todo file")
)

// ValidateTask checks that a task description is non-empty.
func ValidateTask(task string) error {
	if task == "" {
		return ErrEmptyTask
	}
	return nil
}

// ValidateRecord checks the field invariants of a single record.
func ValidateRecord(t *Todo) error {
	if t.ID <= 0 {
		return fmt.Errorf("id must be positive, got %d", t.ID)
	}
	if err := ValidateTask(t.Task); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	for _, tag := range t.Tags {
		if tag == "" {
			return fmt.Errorf("tag cannot be empty")
		}
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("created_at is required")
	}
	if t.CompletedAt != nil && t.CompletedAt.Before(t.CreatedAt) {
		return fmt.Errorf("completed_at %s precedes created_at %s",
			t.CompletedAt.Format("2006-01-02 15:04:05"), t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
