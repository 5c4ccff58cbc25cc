// Package picker implements the interactive list selection used by the
// done, delete, and edit commands when no id is supplied.
//
// The navigation logic is a pure state machine (Machine) that consumes
// normalized key events; the terminal driver (Run) feeds it from a
// bubbletea program rendered inline, below the shell prompt. A numbered
// fallback prompt is used when stdin is not a terminal.
package picker

import "errors"

var (
	// ErrNoItems is returned when selection is requested on an empty list.
	ErrNoItems = errors.New("no todos to select from")

	// ErrCancelled is returned when the user cancels the selection. The
	// caller must treat it as "abort the command, mutate nothing".
	ErrCancelled = errors.New("selection cancelled")
)

// Key is a normalized input event fed to the state machine.
type Key int

const (
	// KeyNone is an unrecognized key; the state is unchanged.
	KeyNone Key = iota

	// KeyUp moves the cursor up one row.
	KeyUp

	// KeyDown moves the cursor down one row.
	KeyDown

	// KeyConfirm selects the cursor row.
	KeyConfirm

	// KeyCancel aborts the selection.
	KeyCancel
)

// Machine tracks the cursor over a fixed-size row list. It starts
// browsing at index 0 and becomes terminal after a confirm or cancel
// key; later keys are ignored.
type Machine struct {
	size      int
	cursor    int
	selected  bool
	cancelled bool
}

// NewMachine returns a machine browsing a list of the given size.
// An empty list cannot be browsed and returns ErrNoItems.
func NewMachine(size int) (*Machine, error) {
	if size <= 0 {
		return nil, ErrNoItems
	}
	return &Machine{size: size}, nil
}

// Cursor returns the current cursor index.
func (m *Machine) Cursor() int {
	return m.cursor
}

// Done reports whether the machine reached a terminal state.
func (m *Machine) Done() bool {
	return m.selected || m.cancelled
}

// Cancelled reports whether the selection was cancelled.
func (m *Machine) Cancelled() bool {
	return m.cancelled
}

// Handle applies one key event. The cursor clamps at both ends; there is
// no wraparound.
func (m *Machine) Handle(key Key) {
	if m.Done() {
		return
	}
	switch key {
	case KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case KeyDown:
		if m.cursor < m.size-1 {
			m.cursor++
		}
	case KeyConfirm:
		m.selected = true
	case KeyCancel:
		m.cancelled = true
	}
}

// Result returns the selected index once the machine is done. A
// cancelled machine returns ErrCancelled.
func (m *Machine) Result() (int, error) {
	if m.cancelled {
		return 0, ErrCancelled
	}
	if !m.selected {
		return 0, errors.New("selection is not finished")
	}
	return m.cursor, nil
}
