package pq

import (
	"errors"
	"fmt"

	"github.com/bcardiff/go-pq/engine"
)

var (
	// ErrEngineNil is returned when a Config carries no engine.
	ErrEngineNil = errors.New("engine cannot be nil")

	// ErrConnClosed is returned when an operation is attempted on a
	// connection after Finish.
	ErrConnClosed = errors.New("connection is closed")
)

// Error reports a query submission that the engine rejected before any
// result frame existed.
type Error struct {
	// Message is the engine's connection-level error message at the time of
	// the rejection.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "query submission rejected"
	}
	return e.Message
}

// ConnectionError reports a connection-level failure: the connection could
// not be established, or an escaping call failed at the connection level.
type ConnectionError struct {
	// Message is the engine's connection-level error message.
	Message string
}

func (e *ConnectionError) Error() string {
	if e.Message == "" {
		return "connection failure"
	}
	return e.Message
}

// ResultError reports a result frame that failed validation. Message comes
// from the failing frame itself, not from the connection, since the
// connection-level message may already describe a later operation by the
// time the error is inspected.
type ResultError struct {
	// Status is the frame's status code.
	Status engine.ResultStatus

	// Message is the error message carried by the failing frame.
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}
