package enginemock

import (
	"strings"

	"github.com/bcardiff/go-pq/engine"
)

// Config represents the configuration for creating a scripted Engine.
type Config struct {
	// ConnectStatus is the status every opened handle reports.
	ConnectStatus engine.ConnStatus

	// ErrorMessage is the connection-level error message handles report when
	// no more specific message has been recorded.
	ErrorMessage string

	// SocketFD is the file descriptor handles report for their socket.
	SocketFD int

	// SendFail forces SendQueryParams to reject every submission.
	SendFail bool

	// EscapeFail forces EscapeLiteral and EscapeIdentifier to fail.
	EscapeFail bool

	// QueryValidator validates each submitted query and its parameters. A
	// returned error rejects the submission and becomes the connection-level
	// error message.
	QueryValidator func(query string, params []engine.Param, resultFormat engine.Format) error

	// Results scripts the frames produced per submission: Results[i] is the
	// frame sequence for the i-th SendQueryParams call. Submissions beyond
	// the script produce no frames.
	Results [][]*Frame

	// ExecFrame is the aggregate frame returned by Exec. A nil ExecFrame
	// makes Exec report a connection-level failure.
	ExecFrame *Frame
}

// Engine is a scripted engine.Engine implementation for tests.
type Engine struct {
	config Config

	// Handles records every handle opened by Connect, in order, so tests can
	// inspect submissions, finishes, and frame bookkeeping.
	Handles []*Handle
}

// Ensure the mock satisfies the contract at compile time.
var _ engine.Engine = (*Engine)(nil)

// New creates a scripted Engine based on the provided Config.
func New(config Config) (*Engine, error) {
	return &Engine{config: config}, nil
}

// Connect opens a scripted handle and records it.
func (e *Engine) Connect(conninfo string) engine.Handle {
	h := &Handle{config: e.config, Conninfo: conninfo}
	e.Handles = append(e.Handles, h)
	return h
}

// Handle is a scripted engine.Handle.
type Handle struct {
	config Config

	// Conninfo is the conninfo string the handle was opened with.
	Conninfo string

	// Sends counts SendQueryParams calls.
	Sends int

	// Finished reports whether Finish was called.
	Finished bool

	lastError string
	pending   []*Frame
}

var _ engine.Handle = (*Handle)(nil)

// Status reports the configured connection status.
func (h *Handle) Status() engine.ConnStatus { return h.config.ConnectStatus }

// Socket reports the configured socket descriptor.
func (h *Handle) Socket() int { return h.config.SocketFD }

// ErrorMessage returns the most recently recorded error message, falling back
// to the configured one.
func (h *Handle) ErrorMessage() string {
	if h.lastError != "" {
		return h.lastError
	}
	return h.config.ErrorMessage
}

// SendQueryParams validates and records a submission, queueing the scripted
// frames for the matching Results entry.
func (h *Handle) SendQueryParams(query string, params []engine.Param, resultFormat engine.Format) bool {
	if h.config.SendFail {
		return false
	}

	if h.config.QueryValidator != nil {
		if err := h.config.QueryValidator(query, params, resultFormat); err != nil {
			h.lastError = err.Error()
			return false
		}
	}

	if h.Sends < len(h.config.Results) {
		h.pending = append(h.pending, h.config.Results[h.Sends]...)
	}
	h.Sends++
	return true
}

// GetResult pops the next scripted frame, or returns nil once the queued
// frames are exhausted.
func (h *Handle) GetResult() engine.Frame {
	if len(h.pending) == 0 {
		return nil
	}
	f := h.pending[0]
	h.pending = h.pending[1:]
	return f
}

// Exec returns the configured aggregate frame, or nil to simulate a
// connection-level failure.
func (h *Handle) Exec(query string) engine.Frame {
	if h.config.ExecFrame == nil {
		return nil
	}
	return h.config.ExecFrame
}

// EscapeLiteral quotes s as a SQL literal the way the engine contract
// requires: quotes are doubled, and strings containing backslashes use the
// E'' form with backslashes doubled as well.
func (h *Handle) EscapeLiteral(s string) (string, bool) {
	if h.config.EscapeFail {
		return "", false
	}

	escaped := strings.ReplaceAll(s, "'", "''")
	if strings.Contains(s, `\`) {
		escaped = strings.ReplaceAll(escaped, `\`, `\\`)
		return "E'" + escaped + "'", true
	}
	return "'" + escaped + "'", true
}

// EscapeIdentifier double-quotes s as a SQL identifier, doubling embedded
// double quotes.
func (h *Handle) EscapeIdentifier(s string) (string, bool) {
	if h.config.EscapeFail {
		return "", false
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`, true
}

// Finish marks the handle released.
func (h *Handle) Finish() {
	h.Finished = true
}

// Frame is a scripted engine.Frame that tracks how often it was released.
type Frame struct {
	// FrameStatus is the status code the frame reports.
	FrameStatus engine.ResultStatus

	// Message is the error message the frame reports.
	Message string

	// Columns are the column names of the frame.
	Columns []string

	// Rows holds the raw cell values; a nil cell represents SQL NULL.
	Rows [][][]byte

	// ClearCount counts Clear calls. Exactly one is correct; zero is a leak
	// and two is a double release.
	ClearCount int
}

var _ engine.Frame = (*Frame)(nil)

// Status returns the scripted status code.
func (f *Frame) Status() engine.ResultStatus { return f.FrameStatus }

// ErrorMessage returns the scripted message.
func (f *Frame) ErrorMessage() string { return f.Message }

// Tuples returns the scripted row count.
func (f *Frame) Tuples() int { return len(f.Rows) }

// Fields returns the scripted column count.
func (f *Frame) Fields() int { return len(f.Columns) }

// FieldName returns the name of column col.
func (f *Frame) FieldName(col int) string { return f.Columns[col] }

// Value returns the raw bytes at row, col.
func (f *Frame) Value(row, col int) []byte { return f.Rows[row][col] }

// IsNull reports whether the cell at row, col is NULL.
func (f *Frame) IsNull(row, col int) bool { return f.Rows[row][col] == nil }

// Clear records a release of the frame.
func (f *Frame) Clear() { f.ClearCount++ }
