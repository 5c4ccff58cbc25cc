package todo

import (
	"errors"
	"testing"
	"time"
)

func validRecord() Todo {
	return Todo{
		ID:        1,
		Task:      "Write spec",
		Priority:  PriorityMedium,
		CreatedAt: time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestValidateRecord(t *testing.T) {
	record := validRecord()
	if err := ValidateRecord(&record); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}
}

func TestValidateRecord_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Todo)
		want   error
	}{
		{"zero id", func(r *Todo) { r.ID = 0 }, nil},
		{"negative id", func(r *Todo) { r.ID = -3 }, nil},
		{"empty task", func(r *Todo) { r.Task = "" }, ErrEmptyTask},
		{"bad priority", func(r *Todo) { r.Priority = "urgent" }, ErrInvalidPriority},
		{"empty tag", func(r *Todo) { r.Tags = []string{"work", ""} }, nil},
		{"zero created_at", func(r *Todo) { r.CreatedAt = time.Time{} }, nil},
		{"completed before created", func(r *Todo) {
			before := r.CreatedAt.Add(-time.Hour)
			r.CompletedAt = &before
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)
			err := ValidateRecord(&record)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
