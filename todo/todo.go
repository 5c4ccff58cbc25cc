// Package todo implements the record model and durable store for the td
// command-line todo manager.
//
// Records live in a single JSON file (todos.json) under a per-user data
// directory. All mutation goes through the Store, which rewrites the file
// atomically (write to temp, then rename) so readers never observe a
// partially-written file.
//
// The public API mirrors the CLI commands:
//   - Add, Done, Delete, Edit for record lifecycle
//   - Load, List for querying
package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is a positive integer, unique within the store. IDs are assigned
	// as max existing id + 1 and are never reused after deletion.
	ID int `json:"id"`

	// Task is the text description of the task.
	Task string `json:"task"`

	// Priority is the importance level (high, medium, low).
	Priority Priority `json:"priority"`

	// Tags are display-ordered labels attached to the task.
	Tags []string `json:"tags,omitempty"`

	// DueDate is the calendar date the task is due (nil if none).
	DueDate *Date `json:"due_date,omitempty"`

	// CreatedAt is when the task was created. Set once, never modified.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the task was marked done (nil while open).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsCompleted reports whether the task has been marked done.
func (t Todo) IsCompleted() bool {
	return t.CompletedAt != nil
}

// HasTag reports whether the task carries the tag (case-sensitive).
func (t Todo) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Equal reports whether two records are field-for-field equal.
// Timestamps compare with time.Time.Equal so location differences
// introduced by serialization do not matter.
func (t Todo) Equal(other Todo) bool {
	if t.ID != other.ID || t.Task != other.Task || t.Priority != other.Priority {
		return false
	}
	if len(t.Tags) != len(other.Tags) {
		return false
	}
	for i := range t.Tags {
		if t.Tags[i] != other.Tags[i] {
			return false
		}
	}
	if (t.DueDate == nil) != (other.DueDate == nil) {
		return false
	}
	if t.DueDate != nil && *t.DueDate != *other.DueDate {
		return false
	}
	if !t.CreatedAt.Equal(other.CreatedAt) {
		return false
	}
	if (t.CompletedAt == nil) != (other.CompletedAt == nil) {
		return false
	}
	if t.CompletedAt != nil && !t.CompletedAt.Equal(*other.CompletedAt) {
		return false
	}
	return true
}
