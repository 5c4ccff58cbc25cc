package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ameskill/td/todo"
)

type sortKey string

const (
	sortDue      sortKey = "due"
	sortPriority sortKey = "priority"
	sortCreated  sortKey = "created"
	sortAge      sortKey = "age"
)

func parseSortKey(value string) (sortKey, error) {
	key := sortKey(strings.ToLower(strings.TrimSpace(value)))
	switch key {
	case sortDue, sortPriority, sortCreated, sortAge:
		return key, nil
	}
	return "", fmt.Errorf("invalid sort key %q (want due, priority, created, or age)", value)
}

// sortTodos orders records for display. Completed records always sort
// after open ones, and the sort is stable so records that tie on the key
// keep their insertion order.
func sortTodos(items []todo.Todo, key sortKey) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsCompleted() != b.IsCompleted() {
			return !a.IsCompleted()
		}
		switch key {
		case sortDue:
			if (a.DueDate == nil) != (b.DueDate == nil) {
				return a.DueDate != nil
			}
			if a.DueDate != nil && *a.DueDate != *b.DueDate {
				return a.DueDate.Before(*b.DueDate)
			}
			return false
		case sortPriority:
			return todo.PriorityRank(a.Priority) < todo.PriorityRank(b.Priority)
		case sortCreated:
			// Newest first.
			return a.CreatedAt.After(b.CreatedAt)
		case sortAge:
			// Oldest first.
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return false
	})
}

// groupTodos splits records into display groups: open records bucketed
// by priority, completed records last. Order within each group is
// preserved.
func groupTodos(items []todo.Todo) (high, medium, low, completed []todo.Todo) {
	for _, item := range items {
		switch {
		case item.IsCompleted():
			completed = append(completed, item)
		case item.Priority == todo.PriorityHigh:
			high = append(high, item)
		case item.Priority == todo.PriorityLow:
			low = append(low, item)
		default:
			medium = append(medium, item)
		}
	}
	return high, medium, low, completed
}
