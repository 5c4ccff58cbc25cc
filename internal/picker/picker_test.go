package picker

import (
	"errors"
	"testing"
)

func TestNewMachine_Empty(t *testing.T) {
	if _, err := NewMachine(0); !errors.Is(err, ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}
	if _, err := NewMachine(-1); !errors.Is(err, ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}
}

func TestMachine_CursorClamps(t *testing.T) {
	machine, err := NewMachine(3)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}

	machine.Handle(KeyUp)
	if machine.Cursor() != 0 {
		t.Errorf("cursor moved above the first row: %d", machine.Cursor())
	}

	for i := 0; i < 5; i++ {
		machine.Handle(KeyDown)
	}
	if machine.Cursor() != 2 {
		t.Errorf("cursor moved past the last row: %d", machine.Cursor())
	}
}

func TestMachine_Sequence(t *testing.T) {
	machine, err := NewMachine(5)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}

	for _, key := range []Key{KeyDown, KeyDown, KeyUp, KeyConfirm} {
		machine.Handle(key)
	}

	if !machine.Done() {
		t.Fatal("machine should be done after confirm")
	}
	index, err := machine.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if index != 1 {
		t.Errorf("selected index = %d, want 1", index)
	}
}

func TestMachine_Cancel(t *testing.T) {
	machine, err := NewMachine(2)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}

	machine.Handle(KeyCancel)
	if !machine.Cancelled() {
		t.Fatal("machine should be cancelled")
	}
	if _, err := machine.Result(); !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestMachine_IgnoresKeysWhenDone(t *testing.T) {
	machine, err := NewMachine(3)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}

	machine.Handle(KeyDown)
	machine.Handle(KeyConfirm)
	machine.Handle(KeyDown)
	machine.Handle(KeyCancel)

	index, err := machine.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if index != 1 {
		t.Errorf("selected index = %d, want 1", index)
	}
}

func TestMachine_UnrecognizedKey(t *testing.T) {
	machine, err := NewMachine(3)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}

	machine.Handle(KeyNone)
	if machine.Cursor() != 0 || machine.Done() {
		t.Error("unrecognized key must leave the state unchanged")
	}
}

func TestMachine_ResultBeforeDone(t *testing.T) {
	machine, err := NewMachine(3)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}

	if _, err := machine.Result(); err == nil {
		t.Error("expected an error before the machine is done")
	}
}
