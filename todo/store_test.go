package todo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func readStoreFile(t *testing.T, store *Store) []byte {
	t.Helper()

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	return data
}

func TestOpen_RequiresDir(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected an error for empty dir")
	}
}

func TestLoad_AbsentFile(t *testing.T) {
	store := newTestStore(t)

	items, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("absent file should load as empty store, got %d records", len(items))
	}
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)

	for i := 1; i <= 3; i++ {
		created, err := store.Add("task", AddOptions{})
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if created.ID != i {
			t.Errorf("add %d: got id %d", i, created.ID)
		}
	}
}

func TestAdd_Defaults(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("  spaced   out  task ", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if created.Task != "spaced out task" {
		t.Errorf("task whitespace not normalized: %q", created.Task)
	}
	if created.Priority != PriorityMedium {
		t.Errorf("default priority = %q", created.Priority)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at not stamped")
	}
	if created.CompletedAt != nil {
		t.Error("new records must be open")
	}
}

func TestAdd_NormalizesTags(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("task", AddOptions{
		Tags: []string{"work", "", "home", "work", " home "},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	want := []string{"work", "home"}
	if len(created.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", created.Tags, want)
	}
	for i := range want {
		if created.Tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", created.Tags, want)
		}
	}
}

func TestAdd_Validation(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("", AddOptions{}); !errors.Is(err, ErrEmptyTask) {
		t.Errorf("empty task: expected ErrEmptyTask, got %v", err)
	}
	if _, err := store.Add("   ", AddOptions{}); !errors.Is(err, ErrEmptyTask) {
		t.Errorf("blank task: expected ErrEmptyTask, got %v", err)
	}
	if _, err := store.Add("task", AddOptions{Priority: "urgent"}); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("bad priority: expected ErrInvalidPriority, got %v", err)
	}
}

func TestIDsNeverReused(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.Add("task", AddOptions{}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := store.Delete(3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	created, err := store.Add("task", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("deleted id reused: got %d, want 4", created.ID)
	}
}

func TestDone(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("task", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	completed, err := store.Done(created.ID)
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Fatal("completed_at not stamped")
	}
	if completed.CompletedAt.Before(completed.CreatedAt) {
		t.Error("completed_at precedes created_at")
	}

	// Marking done twice is an error, not a no-op.
	if _, err := store.Done(created.ID); !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("expected ErrAlreadyDone, got %v", err)
	}
}

func TestDone_NotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Done(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("doomed", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := store.Delete(created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Task != "doomed" {
		t.Errorf("removed record task = %q", removed.Task)
	}

	if _, err := store.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	store := newTestStore(t)

	due := NewDate(2025, time.March, 1)
	created, err := store.Add("old text", AddOptions{
		Priority: PriorityHigh,
		Tags:     []string{"work"},
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := store.Edit(created.ID, "new text")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if updated.Task != "new text" {
		t.Errorf("task = %q", updated.Task)
	}
	if updated.Priority != PriorityHigh || len(updated.Tags) != 1 || updated.DueDate == nil {
		t.Error("edit must only replace task text")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at must be immutable")
	}
}

func TestEdit_Validation(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("task", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := store.Edit(created.ID, ""); !errors.Is(err, ErrEmptyTask) {
		t.Errorf("expected ErrEmptyTask, got %v", err)
	}
}

func TestEdit_NotFoundLeavesFileUntouched(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("task", AddOptions{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := readStoreFile(t, store)

	if _, err := store.Edit(99, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after := readStoreFile(t, store)
	if string(before) != string(after) {
		t.Error("failed edit must leave the file byte-identical")
	}
}

func TestList_Filters(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("open work task", AddOptions{Tags: []string{"work"}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.Add("open home task", AddOptions{Tags: []string{"home"}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	completed, err := store.Add("done work task", AddOptions{Tags: []string{"work"}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.Done(completed.ID); err != nil {
		t.Fatalf("done: %v", err)
	}

	open, err := store.List(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("open list has %d records, want 2", len(open))
	}
	for _, item := range open {
		if item.IsCompleted() {
			t.Errorf("completed record %d returned without ShowCompleted", item.ID)
		}
	}

	all, err := store.List(ListFilter{ShowCompleted: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("full list has %d records, want 3", len(all))
	}

	work, err := store.List(ListFilter{ShowCompleted: true, Tag: "work"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(work) != 2 {
		t.Errorf("work list has %d records, want 2", len(work))
	}
	for _, item := range work {
		if !item.HasTag("work") {
			t.Errorf("record %d does not carry the work tag", item.ID)
		}
	}

	// Tag matching is case-sensitive.
	upper, err := store.List(ListFilter{ShowCompleted: true, Tag: "Work"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(upper) != 0 {
		t.Errorf("tag filter must be case-sensitive, got %d records", len(upper))
	}
}

func TestList_InsertionOrder(t *testing.T) {
	store := newTestStore(t)

	for _, task := range []string{"first", "second", "third"} {
		if _, err := store.Add(task, AddOptions{}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	items, err := store.List(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Task != want {
			t.Errorf("position %d: got %q, want %q", i, items[i].Task, want)
		}
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	store := newTestStore(t)

	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	corrupt := []byte(`[{"id": 1, "task": "x", "priority": "urgent"`)
	if err := os.WriteFile(store.Path(), corrupt, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrCorruptFile) {
		t.Errorf("expected ErrCorruptFile, got %v", err)
	}

	// Mutations propagate the decode failure and never reset the file.
	if _, err := store.Add("task", AddOptions{}); !errors.Is(err, ErrCorruptFile) {
		t.Errorf("expected ErrCorruptFile from add, got %v", err)
	}
	after := readStoreFile(t, store)
	if string(after) != string(corrupt) {
		t.Error("corrupt file must never be rewritten")
	}
}

func TestLoad_IgnoresStrayTempFile(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Add("survives", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// A crashed writer may leave a truncated temp file behind; the
	// committed state must be unaffected.
	if err := os.WriteFile(store.Path()+".tmp", []byte(`[{"id": 9,`), 0644); err != nil {
		t.Fatalf("write temp: %v", err)
	}

	items, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Errorf("load returned %v", items)
	}
}

func TestSaveFailureLeavesFileUntouched(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not restrict root")
	}

	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if _, err := store.Add("committed", AddOptions{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := readStoreFile(t, store)

	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	if _, err := store.Add("lost", AddOptions{}); !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}

	if err := os.Chmod(dir, 0755); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	after := readStoreFile(t, store)
	if string(before) != string(after) {
		t.Error("failed save must leave the previous state unmodified")
	}

	items, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Task != "committed" {
		t.Errorf("load after failed save returned %v", items)
	}
}
