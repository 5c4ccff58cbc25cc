package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ameskill/td/internal/picker"
	"github.com/ameskill/td/internal/ui"
	"github.com/ameskill/td/todo"
)

// parseID parses a numeric todo id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", arg)
	}
	return id, nil
}

// resolveID returns the id from args when present, otherwise opens the
// interactive picker over the store's records. A cancelled picker
// surfaces picker.ErrCancelled, which callers turn into a no-op.
func resolveID(args []string, store *todo.Store, title string, showCompleted bool) (int, error) {
	if len(args) > 0 {
		return parseID(args[0])
	}

	items, err := store.List(todo.ListFilter{ShowCompleted: showCompleted})
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, picker.ErrNoItems
	}

	now := time.Now()
	rows := make([]picker.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, picker.Row{ID: item.ID, Label: ui.FormatLine(item, now, false)})
	}

	row, err := picker.Select(title, rows)
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// handlePickerAbort absorbs cancellation and empty-list outcomes with a
// user-visible message, mutating nothing. Other errors pass through.
func handlePickerAbort(err error) (handled bool, result error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, picker.ErrCancelled):
		fmt.Println("Cancelled.")
		return true, nil
	case errors.Is(err, picker.ErrNoItems):
		fmt.Println("No todos available.")
		return true, nil
	default:
		return true, err
	}
}

// confirm asks a yes/no question and returns true only on an explicit
// yes answer.
func confirm(message string) bool {
	fmt.Printf("%s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// promptLine reads one line of input after showing a prompt.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
