package engine

// Format selects the wire representation used for a parameter or for result
// columns.
type Format int16

const (
	// Text is the textual wire representation.
	Text Format = 0

	// Binary is the raw binary wire representation.
	Binary Format = 1
)

// ConnStatus reports the health of a connection handle.
type ConnStatus int

const (
	// StatusOK means the handle is a usable open connection.
	StatusOK ConnStatus = iota

	// StatusBad means the connection attempt failed or the connection broke.
	StatusBad
)

// ResultStatus is the status code the engine attaches to a result frame.
type ResultStatus int

const (
	// EmptyQuery means the submitted query string was empty.
	EmptyQuery ResultStatus = iota

	// CommandOK means a command completed without returning rows.
	CommandOK

	// TuplesOK means the frame carries the full row set of a query.
	TuplesOK

	// CopyOut means the connection entered COPY-out mode.
	CopyOut

	// CopyIn means the connection entered COPY-in mode.
	CopyIn

	// BadResponse means the server response could not be understood.
	BadResponse

	// NonfatalError means the server reported a non-fatal error.
	NonfatalError

	// FatalError means the server reported a fatal error.
	FatalError

	// CopyBoth means the connection entered COPY-both mode.
	CopyBoth

	// SingleTuple means the frame carries one row of a streamed row set.
	SingleTuple
)

var resultStatusNames = map[ResultStatus]string{
	EmptyQuery:    "EMPTY_QUERY",
	CommandOK:     "COMMAND_OK",
	TuplesOK:      "TUPLES_OK",
	CopyOut:       "COPY_OUT",
	CopyIn:        "COPY_IN",
	BadResponse:   "BAD_RESPONSE",
	NonfatalError: "NONFATAL_ERROR",
	FatalError:    "FATAL_ERROR",
	CopyBoth:      "COPY_BOTH",
	SingleTuple:   "SINGLE_TUPLE",
}

// String returns the conventional name for the status code.
func (s ResultStatus) String() string {
	if name, ok := resultStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Param is one bound query parameter, already encoded for the wire.
type Param struct {
	// Format declares how Value is encoded.
	Format Format

	// Value holds the encoded parameter bytes. A zero-length binary value
	// represents SQL NULL.
	Value []byte
}

// Engine opens connections to a database server.
type Engine interface {
	// Connect opens a connection handle for the given conninfo string. The
	// returned handle is never nil; callers must check Status to learn
	// whether the connection is usable.
	Connect(conninfo string) Handle
}

// Handle is one open connection. A handle is owned by a single caller and is
// not safe for concurrent use. Finish must be called exactly once to release
// the underlying resources.
type Handle interface {
	// Status reports whether the connection is usable.
	Status() ConnStatus

	// Socket returns the file descriptor of the connection's socket.
	Socket() int

	// ErrorMessage returns the most recent connection-level error message.
	ErrorMessage() string

	// SendQueryParams submits a parameterized query without blocking.
	// Parameter types are left for the server to infer. It reports whether
	// the submission was queued; on false the reason is available from
	// ErrorMessage and no result frames will follow.
	SendQueryParams(query string, params []Param, resultFormat Format) bool

	// GetResult returns the next pending result frame, or nil once the
	// current query is fully drained. Callers must wait for socket
	// readability before each call.
	GetResult() Frame

	// Exec submits query (which may contain multiple statements) and blocks
	// until a single aggregate frame is available. A nil frame indicates a
	// connection-level failure.
	Exec(query string) Frame

	// EscapeLiteral quotes a string for use as a SQL literal. It reports
	// false on connection-level failure.
	EscapeLiteral(s string) (string, bool)

	// EscapeIdentifier quotes a string for use as a SQL identifier. It
	// reports false on connection-level failure.
	EscapeIdentifier(s string) (string, bool)

	// Finish closes the connection and releases its resources.
	Finish()
}

// Frame is one discrete result unit produced for a submitted query. A query
// may yield zero, one, or many frames. Ownership transfers to whichever
// consumer processes the frame; Clear must be called exactly once.
type Frame interface {
	// Status returns the status code the engine attached to this frame.
	Status() ResultStatus

	// ErrorMessage returns the error message carried by this frame. It is
	// empty for success statuses.
	ErrorMessage() string

	// Tuples returns the number of rows in the frame.
	Tuples() int

	// Fields returns the number of columns in the frame.
	Fields() int

	// FieldName returns the name of column col.
	FieldName(col int) string

	// Value returns the raw bytes of the value at row, col.
	Value(row, col int) []byte

	// IsNull reports whether the value at row, col is SQL NULL.
	IsNull(row, col int) bool

	// Clear releases the frame.
	Clear()
}
