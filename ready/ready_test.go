package ready

import (
	"os"
	"testing"
	"time"
)

func TestNew_BadDescriptor(t *testing.T) {
	t.Parallel()

	if _, err := New(-1); err != ErrBadDescriptor {
		t.Fatalf("expected ErrBadDescriptor, got %v", err)
	}
}

func TestWaitRead_PipeBecomesReadable(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	waiter, err := New(int(r.Fd()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- waiter.WaitRead()
	}()

	// Give the waiter a moment to block before making the pipe readable.
	time.Sleep(10 * time.Millisecond)
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WaitRead returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WaitRead did not return after the pipe became readable")
	}
}

func TestWaitRead_AlreadyReadable(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("write: %v", err)
	}

	waiter, err := New(int(r.Fd()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := waiter.WaitRead(); err != nil {
		t.Fatalf("WaitRead returned error: %v", err)
	}
}
