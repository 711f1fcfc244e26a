package levent

import (
	"errors"
	"testing"
)

func TestConnection_DisconnectIdempotent(t *testing.T) {
	ev := New[int, Void]()
	conn, err := ev.Add(Callable(func(Void) int { return 1 }))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	conn.Disconnect()
	conn.Disconnect()
	conn.Disconnect()

	if conn.Live() {
		t.Error("expected connection to be dead after Disconnect()")
	}
	if got := len(ev.Trigger(Void{})); got != 0 {
		t.Errorf("listener count after disconnect = %d, want 0", got)
	}
}

func TestConnection_FailedConnection(t *testing.T) {
	conn := failedConnection(ErrFailedToMatchEventType)

	if conn.Live() {
		t.Error("expected error-only connection to not be live")
	}
	if conn.IsActive() {
		t.Error("expected error-only connection to not be active")
	}
	if !errors.Is(conn.Err(), ErrFailedToMatchEventType) {
		t.Errorf("Err() = %v, want ErrFailedToMatchEventType", conn.Err())
	}

	// Disconnect on an error-only connection is a no-op.
	conn.Disconnect()
}

func TestConnection_States(t *testing.T) {
	ev := New[int, Void]()
	conn, err := ev.Add(Callable(func(Void) int { return 1 }))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if !conn.Live() {
		t.Error("expected fresh connection to be live")
	}
	if !conn.IsActive() {
		t.Error("expected fresh connection to be active")
	}
	if conn.Err() != nil {
		t.Errorf("Err() = %v, want nil", conn.Err())
	}

	conn.Disconnect()

	if conn.Live() {
		t.Error("expected disconnected connection to not be live")
	}
	if conn.IsActive() {
		t.Error("expected disconnected connection to not be active")
	}
}

func TestConnection_CloseIsScoped(t *testing.T) {
	ev := New[int, Void]()

	func() {
		conn, err := ev.Add(Callable(func(Void) int { return 1 }))
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		defer conn.Close()

		if got := len(ev.Trigger(Void{})); got != 1 {
			t.Errorf("listener count in scope = %d, want 1", got)
		}
	}()

	if got := len(ev.Trigger(Void{})); got != 0 {
		t.Errorf("listener count after scope exit = %d, want 0", got)
	}
}

func TestConnection_CloseIdempotent(t *testing.T) {
	ev := New[int, Void]()
	conn, err := ev.Add(Callable(func(Void) int { return 1 }))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if err := conn.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestConnection_DeadAfterEventDestroyed(t *testing.T) {
	ev := New[int, Void]()
	conn, err := ev.Add(Callable(func(Void) int { return 1 }))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	ev.destroy()

	if conn.Live() {
		t.Error("expected connection to a destroyed event to not be live")
	}
	// Disconnect on a dead event must be safe.
	conn.Disconnect()
}
