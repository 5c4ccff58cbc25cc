package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ameskill/td/todo"
	"github.com/charmbracelet/lipgloss"
)

// staleAge is how old an undated open task must be before its age shows.
const staleAge = 7 * 24 * time.Hour

// FormatLine renders one todo as a compact single line: status glyph,
// optional id, priority-colored task text, tags, and the most urgent
// date annotation.
func FormatLine(item todo.Todo, now time.Time, includeID bool) string {
	var b strings.Builder

	if item.IsCompleted() {
		b.WriteString("✓ ")
	} else {
		b.WriteString("○ ")
	}

	if includeID {
		fmt.Fprintf(&b, "[%3d] ", item.ID)
	}

	b.WriteString(priorityMarker(item.Priority))
	b.WriteString(priorityStyle(item.Priority).Render(item.Task))

	if len(item.Tags) > 0 {
		b.WriteString(" ")
		b.WriteString(tagStyle.Render("[" + strings.Join(item.Tags, ",") + "]"))
	}

	if annotation := dateAnnotation(item, now); annotation != "" {
		b.WriteString(" ")
		b.WriteString(annotation)
	}

	return b.String()
}

func priorityMarker(priority todo.Priority) string {
	if priority == todo.PriorityHigh {
		return "! "
	}
	return "  "
}

func priorityStyle(priority todo.Priority) lipgloss.Style {
	switch priority {
	case todo.PriorityHigh:
		return highStyle
	case todo.PriorityLow:
		return lowStyle
	default:
		return mediumStyle
	}
}

// dateAnnotation returns the most urgent date detail for the line: the
// due date when set, otherwise the age of stale undated open tasks.
func dateAnnotation(item todo.Todo, now time.Time) string {
	if days, ok := todo.DueData(item, now); ok {
		switch {
		case days < 0:
			return overdueStyle.Render(fmt.Sprintf("!%dd", -days))
		case days == 0:
			return overdueStyle.Render("!today")
		case days <= 7:
			return soonStyle.Render(fmt.Sprintf("→%dd", days))
		default:
			return mutedStyle.Render(item.DueDate.String())
		}
	}

	if item.IsCompleted() {
		return ""
	}
	if age, ok := todo.AgeData(item, now); ok && age > staleAge {
		return mutedStyle.Render(FormatDurationShort(age))
	}
	return ""
}
