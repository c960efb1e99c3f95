package ready

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrBadDescriptor is returned when a Waiter is requested for a negative
	// file descriptor.
	ErrBadDescriptor = errors.New("file descriptor is invalid")
)

// Waiter blocks the calling goroutine until a file descriptor is readable.
//
// A Waiter is bound to a single descriptor and is meant to be created once
// and reused for every wait on that descriptor.
type Waiter interface {
	// WaitRead returns once the descriptor is readable. It blocks only the
	// calling goroutine; the runtime scheduler keeps running other work.
	WaitRead() error
}

// Factory constructs a Waiter for a socket descriptor. It exists so callers
// can inject alternative implementations in tests.
type Factory func(fd int) (Waiter, error)

// New returns a poll(2)-backed Waiter bound to fd.
func New(fd int) (Waiter, error) {
	if fd < 0 {
		return nil, ErrBadDescriptor
	}
	return &pollWaiter{fd: fd}, nil
}

// pollWaiter implements Waiter using poll(2) with no timeout.
type pollWaiter struct {
	fd int
}

var _ Waiter = (*pollWaiter)(nil)

// WaitRead polls the descriptor for readability, retrying on EINTR.
func (w *pollWaiter) WaitRead() error {
	fds := []unix.PollFd{{Fd: int32(w.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, -1)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("polling descriptor %d: %w", w.fd, err)
		}
		if n > 0 {
			// POLLERR and POLLHUP also count as readable here: the next
			// read on the descriptor surfaces the actual failure.
			return nil
		}
	}
}
