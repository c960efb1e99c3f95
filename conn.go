package pq

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bcardiff/go-pq/engine"
	"github.com/bcardiff/go-pq/ready"
)

// Config controls how a connection interacts with the database engine.
type Config struct {
	// Engine provides the database engine used to open connections.
	Engine engine.Engine

	// Logger receives structured driver logs. When nil, logging is disabled.
	Logger *zap.Logger

	// NewWaiter overrides construction of the socket readiness waiter.
	// When nil, a poll(2)-backed waiter is used. Tests may inject a custom
	// factory.
	NewWaiter ready.Factory
}

// Conn is a single database connection.
//
// A Conn is owned by one goroutine at a time: issuing two queries
// concurrently on the same Conn is a caller error and yields an unspecified
// interleaving of protocol traffic. The driver takes no internal locks.
type Conn struct {
	handle    engine.Handle
	waiter    ready.Waiter
	newWaiter ready.Factory
	logger    *zap.Logger
}

// Connect opens a connection using the given conninfo string.
//
// If the engine reports a non-OK status the partially built handle is
// released and a *ConnectionError carrying the engine's message is returned.
func Connect(config Config, conninfo string) (*Conn, error) {
	if config.Engine == nil {
		return nil, ErrEngineNil
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	newWaiter := config.NewWaiter
	if newWaiter == nil {
		newWaiter = ready.New
	}

	handle := config.Engine.Connect(conninfo)
	if handle.Status() != engine.StatusOK {
		msg := handle.ErrorMessage()
		handle.Finish()
		return nil, &ConnectionError{Message: msg}
	}

	c := &Conn{
		handle:    handle,
		newWaiter: newWaiter,
		logger:    logger.With(zap.String("conn_id", uuid.NewString())),
	}
	c.logger.Debug("connection established")
	return c, nil
}

// ConnectParams opens a connection from key/value connection parameters,
// serialized as space-joined "key=value" pairs. Keys are sorted so the
// resulting conninfo string is deterministic.
func ConnectParams(config Config, params map[string]string) (*Conn, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	return Connect(config, strings.Join(pairs, " "))
}

// Finish releases the connection. After Finish every operation on the Conn,
// including a second Finish, returns ErrConnClosed.
func (c *Conn) Finish() error {
	if c.handle == nil {
		return ErrConnClosed
	}
	c.handle.Finish()
	c.handle = nil
	c.waiter = nil
	c.logger.Debug("connection closed")
	return nil
}

// Exec submits a parameterized query and returns its first result. It is
// shorthand for ExecTyped with dynamic typing.
func (c *Conn) Exec(query string, args ...any) (*Result, error) {
	return c.ExecTyped(nil, query, args...)
}

// ExecTyped submits a parameterized query, declaring the expected result
// column types, and returns the first successfully validated result.
//
// Parameters are encoded positionally and sent without type hints; results
// are always requested in text format. If the query yields more than one
// frame, the remaining frames are still drained before ExecTyped returns,
// so the connection is idle again; only the first is handed back. The
// caller owns the returned Result and must Close it. A query yielding no
// frames at all returns a nil Result.
func (c *Conn) ExecTyped(types []FieldType, query string, args ...any) (*Result, error) {
	if c.handle == nil {
		return nil, ErrConnClosed
	}

	params := encodeParams(args)
	c.logger.Debug("sending query", zap.String("query", query), zap.Int("params", len(params)))

	if !c.handle.SendQueryParams(query, params, engine.Text) {
		return nil, &Error{Message: c.handle.ErrorMessage()}
	}

	return c.drain(types)
}

// ExecAll submits query text that may contain multiple statements and
// validates the single aggregate status. It supports no parameters and
// yields no results; it exists for setup scripts and the like.
func (c *Conn) ExecAll(query string) error {
	if c.handle == nil {
		return ErrConnClosed
	}

	c.logger.Debug("sending batch", zap.String("query", query))

	frame := c.handle.Exec(query)
	if frame == nil {
		return &Error{Message: c.handle.ErrorMessage()}
	}
	defer frame.Clear()

	switch st := frame.Status(); st {
	case engine.TuplesOK, engine.SingleTuple, engine.CommandOK:
		return nil
	default:
		return &ResultError{Status: st, Message: frame.ErrorMessage()}
	}
}

// drain consumes every pending result frame for the current query. The
// first successfully validated frame becomes the returned Result; all other
// frames are cleared. The first failing frame is remembered and returned
// only after the stream is exhausted, so the connection is guaranteed to be
// idle again whenever drain hands control back—error or not.
func (c *Conn) drain(types []FieldType) (*Result, error) {
	var first *Result
	var firstErr error

	for {
		if err := c.waitReadable(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			break
		}

		frame := c.handle.GetResult()
		if frame == nil {
			break
		}

		switch st := frame.Status(); st {
		case engine.TuplesOK, engine.SingleTuple, engine.CommandOK:
			if first == nil && firstErr == nil {
				first = NewResult(types, frame)
			} else {
				frame.Clear()
			}
		default:
			if firstErr == nil {
				firstErr = &ResultError{Status: st, Message: frame.ErrorMessage()}
				c.logger.Debug("result frame failed validation",
					zap.String("status", st.String()),
					zap.String("message", frame.ErrorMessage()))
			}
			frame.Clear()
		}
	}

	if firstErr != nil {
		if first != nil {
			_ = first.Close()
		}
		return nil, firstErr
	}
	return first, nil
}

// waitReadable suspends the calling goroutine until the connection's socket
// is readable. The readiness waiter is created on first use and reused for
// every subsequent wait on this connection.
func (c *Conn) waitReadable() error {
	if c.waiter == nil {
		w, err := c.newWaiter(c.handle.Socket())
		if err != nil {
			return err
		}
		c.waiter = w
	}
	return c.waiter.WaitRead()
}
