package todo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	internalstrings "github.com/ameskill/td/internal/strings"
	"github.com/charmbracelet/log"
)

// TodosFile is the name of the JSON file containing todos.
const TodosFile = "todos.json"

// Store owns the on-disk todo file. All mutation is funneled through it;
// every save rewrites the full file atomically so a concurrent reader or
// a crash mid-write never observes a truncated or mixed-version file.
type Store struct {
	dir  string
	path string
}

// Open returns a store backed by <dir>/todos.json. The directory does
// not need to exist yet; it is created on first save. An absent file is
// treated as an empty store, not an error.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("todo directory is required")
	}
	return &Store{
		dir:  dir,
		path: filepath.Join(dir, TodosFile),
	}, nil
}

// Path returns the path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads all records from the backing file. A corrupt file surfaces
// an error wrapping ErrCorruptFile rather than being reset to empty.
func (s *Store) Load() ([]Todo, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return items, nil
}

// save writes the full encoded content to a temp file in the same
// directory, then atomically replaces the target. A failed save wraps
// ErrSaveFailed and leaves the previous file state unmodified.
func (s *Store) save(items []Todo) error {
	data, err := Encode(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: create todo dir: %v", ErrSaveFailed, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrSaveFailed, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replace todo file: %v", ErrSaveFailed, err)
	}

	log.Debug("saved todos", "path", s.path, "count", len(items))
	return nil
}

// nextID returns max existing id + 1, or 1 for an empty store. Deleted
// ids are never reassigned because the maximum only grows.
func nextID(items []Todo) int {
	next := 1
	for _, item := range items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}

// AddOptions configures a new todo.
type AddOptions struct {
	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// Tags are attached in order; duplicates and empty entries are dropped.
	Tags []string

	// DueDate is an optional calendar due date.
	DueDate *Date
}

// Add validates, persists, and returns a new record.
func (s *Store) Add(task string, opts AddOptions) (*Todo, error) {
	task = internalstrings.NormalizeWhitespace(task)
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}
	if !opts.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, opts.Priority)
	}

	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	item := Todo{
		ID:        nextID(items),
		Task:      task,
		Priority:  opts.Priority,
		Tags:      normalizeTags(opts.Tags),
		DueDate:   opts.DueDate,
		CreatedAt: time.Now(),
	}

	items = append(items, item)
	if err := s.save(items); err != nil {
		return nil, err
	}

	return &item, nil
}

// Done stamps CompletedAt on an open record and persists. Marking an
// already-completed record done again is an error, not a no-op.
func (s *Store) Done(id int) (*Todo, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	index, err := indexByID(items, id)
	if err != nil {
		return nil, err
	}
	if items[index].CompletedAt != nil {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyDone, id)
	}

	now := time.Now()
	items[index].CompletedAt = &now

	if err := s.save(items); err != nil {
		return nil, err
	}
	return &items[index], nil
}

// Delete removes a record and persists, returning the removed record.
// The id is not reassigned to later additions.
func (s *Store) Delete(id int) (*Todo, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	index, err := indexByID(items, id)
	if err != nil {
		return nil, err
	}

	removed := items[index]
	items = append(items[:index], items[index+1:]...)

	if err := s.save(items); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Edit replaces the task text of a record and persists. Priority, tags,
// and due date are untouched.
func (s *Store) Edit(id int, newTask string) (*Todo, error) {
	newTask = internalstrings.NormalizeWhitespace(newTask)
	if err := ValidateTask(newTask); err != nil {
		return nil, err
	}

	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	index, err := indexByID(items, id)
	if err != nil {
		return nil, err
	}

	items[index].Task = newTask

	if err := s.save(items); err != nil {
		return nil, err
	}
	return &items[index], nil
}

// ListFilter configures which todos List returns.
type ListFilter struct {
	// ShowCompleted includes completed records. Default is open only.
	ShowCompleted bool

	// Tag restricts results to records carrying the tag (case-sensitive
	// exact match). Empty means no tag filter.
	Tag string
}

// List returns records matching the filter in insertion order. It is a
// pure query and never writes.
func (s *Store) List(filter ListFilter) ([]Todo, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}

	var result []Todo
	for _, item := range items {
		if !filter.ShowCompleted && item.IsCompleted() {
			continue
		}
		if filter.Tag != "" && !item.HasTag(filter.Tag) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func indexByID(items []Todo, id int) (int, error) {
	for i := range items {
		if items[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// normalizeTags drops empty entries and collapses duplicates while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	var result []string
	for _, tag := range tags {
		tag = internalstrings.NormalizeWhitespace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
