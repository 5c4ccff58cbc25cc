package picker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"
)

// Row is one selectable entry: a record id plus its one-line label. The
// caller builds labels; the picker never inspects them.
type Row struct {
	ID    int
	Label string
}

// Model is the bubbletea model driving a Machine over a row list.
type Model struct {
	title   string
	rows    []Row
	machine *Machine
	width   int
}

// NewModel returns a picker model for the given rows.
func NewModel(title string, rows []Row) (Model, error) {
	machine, err := NewMachine(len(rows))
	if err != nil {
		return Model{}, err
	}
	return Model{title: title, rows: rows, machine: machine}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Keys are normalized to Machine events;
// anything else leaves the state unchanged.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		m.machine.Handle(normalizeKey(msg.String()))
		if m.machine.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the header and rows with the cursor row in reverse video.
// The terminal state after quitting is cleared so the list does not
// linger in scrollback.
func (m Model) View() string {
	if m.machine.Done() {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title + ": (use up/down or j/k to select, enter to confirm, q to cancel)"))
	b.WriteString("\n")
	for i, row := range m.rows {
		line := "   " + row.Label
		if i == m.machine.Cursor() {
			line = cursorStyle.Render(" > " + row.Label + " ")
		}
		if m.width > 0 {
			line = truncate.String(line, uint(m.width))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func normalizeKey(key string) Key {
	switch key {
	case "up", "k":
		return KeyUp
	case "down", "j":
		return KeyDown
	case "enter":
		return KeyConfirm
	case "q", "ctrl+c", "esc":
		return KeyCancel
	default:
		return KeyNone
	}
}

// Run blocks until the user selects a row or cancels. The list renders
// inline (no alternate screen), so surrounding terminal history is
// preserved. Cancellation returns ErrCancelled; an empty row list
// returns ErrNoItems.
func Run(title string, rows []Row) (Row, error) {
	model, err := NewModel(title, rows)
	if err != nil {
		return Row{}, err
	}

	program := tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return Row{}, fmt.Errorf("run picker: %w", err)
	}

	finished, ok := final.(Model)
	if !ok {
		return Row{}, fmt.Errorf("unexpected picker model %T", final)
	}
	index, err := finished.machine.Result()
	if err != nil {
		return Row{}, err
	}
	return rows[index], nil
}

// Select picks the interactive picker when stdin is a terminal and the
// numbered fallback prompt otherwise.
func Select(title string, rows []Row) (Row, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return Run(title, rows)
	}
	return RunFallback(title, rows, os.Stdin, os.Stderr)
}

// RunFallback prompts for a row number on plain stdin/stdout, for
// environments without raw terminal input. Entering q cancels.
func RunFallback(title string, rows []Row, in io.Reader, out io.Writer) (Row, error) {
	if len(rows) == 0 {
		return Row{}, ErrNoItems
	}

	fmt.Fprintf(out, "%s:\n", title)
	for i, row := range rows {
		fmt.Fprintf(out, "%d. %s\n", i+1, row.Label)
	}
	fmt.Fprintf(out, "Enter number (1-%d) or 'q' to cancel: ", len(rows))

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return Row{}, ErrCancelled
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return Row{}, ErrCancelled
	}

	number, err := strconv.Atoi(line)
	if err != nil || number < 1 || number > len(rows) {
		return Row{}, fmt.Errorf("invalid selection %q", line)
	}
	return rows[number-1], nil
}
