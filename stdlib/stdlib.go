package stdlib

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"

	pq "github.com/bcardiff/go-pq"
)

var (
	// ErrNoEngine is returned when a connection is requested through a bare
	// DSN. The adapter needs a configured engine; use OpenDB or NewConnector.
	ErrNoEngine = errors.New("no engine configured: open connections via OpenDB or NewConnector")

	// ErrTxUnsupported is returned from Begin: transaction management is not
	// part of the driver core.
	ErrTxUnsupported = errors.New("transactions are not supported")
)

// Connector opens one driver connection per database/sql request.
type Connector struct {
	cfg      pq.Config
	conninfo string
}

var _ driver.Connector = (*Connector)(nil)

// NewConnector returns a driver.Connector that dials new connections with
// the given Config and conninfo string.
func NewConnector(cfg pq.Config, conninfo string) *Connector {
	return &Connector{cfg: cfg, conninfo: conninfo}
}

// OpenDB opens a database/sql handle backed by the driver.
func OpenDB(cfg pq.Config, conninfo string) *sql.DB {
	return sql.OpenDB(NewConnector(cfg, conninfo))
}

// Connect opens a new connection. The context is accepted to satisfy the
// interface; the core supports no cancellation, so it is not consulted.
func (c *Connector) Connect(_ context.Context) (driver.Conn, error) {
	conn, err := pq.Connect(c.cfg, c.conninfo)
	if err != nil {
		return nil, err
	}
	return &Conn{conn: conn}, nil
}

// Driver returns the adapter's driver.Driver.
func (c *Connector) Driver() driver.Driver { return Driver{} }

// Driver implements driver.Driver. It cannot open connections from a DSN
// alone since an engine instance is required.
type Driver struct{}

var _ driver.Driver = Driver{}

// Open always fails; use OpenDB or NewConnector instead.
func (Driver) Open(string) (driver.Conn, error) {
	return nil, ErrNoEngine
}

// Conn adapts a pq.Conn to driver.Conn.
type Conn struct {
	conn *pq.Conn
}

var _ driver.Conn = (*Conn)(nil)

// Prepare returns a statement bound to this connection. The query is not
// sent ahead of execution; preparation happens server-side when the
// statement runs.
func (c *Conn) Prepare(query string) (driver.Stmt, error) {
	return &Stmt{conn: c.conn, query: query}, nil
}

// Close releases the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Finish()
}

// Begin is not supported.
func (c *Conn) Begin() (driver.Tx, error) {
	return nil, ErrTxUnsupported
}

// Stmt adapts a deferred query to driver.Stmt.
type Stmt struct {
	conn  *pq.Conn
	query string
}

var _ driver.Stmt = (*Stmt)(nil)

// Close releases the statement. Nothing is held server-side.
func (s *Stmt) Close() error { return nil }

// NumInput reports an unknown number of placeholders.
func (s *Stmt) NumInput() int { return -1 }

// Exec runs the statement and discards its result rows after the drain.
func (s *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	res, err := s.conn.Exec(s.query, driverArgs(args)...)
	if err != nil {
		return nil, err
	}
	if res != nil {
		if err := res.Close(); err != nil {
			return nil, err
		}
	}
	return driver.ResultNoRows, nil
}

// Query runs the statement and exposes its first result as rows.
func (s *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	res, err := s.conn.Exec(s.query, driverArgs(args)...)
	if err != nil {
		return nil, err
	}
	return &Rows{res: res}, nil
}

// driverArgs widens driver values to the driver core's parameter encoder
// input. Positional order is preserved.
func driverArgs(args []driver.Value) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// Rows adapts a pq.Result to driver.Rows. Values stay in the engine's text
// wire format; database/sql's conversion rules take it from there. A nil
// result (a query that yielded no frames) behaves as an empty row set.
type Rows struct {
	res *pq.Result
	row int
}

var _ driver.Rows = (*Rows)(nil)

// Columns returns the result's column names.
func (r *Rows) Columns() []string {
	if r.res == nil {
		return nil
	}
	return r.res.Columns()
}

// Close releases the underlying result.
func (r *Rows) Close() error {
	if r.res == nil {
		return nil
	}
	return r.res.Close()
}

// Next copies the next row into dest, reporting io.EOF at the end. NULL
// becomes nil.
func (r *Rows) Next(dest []driver.Value) error {
	if r.res == nil || r.row >= r.res.Len() {
		return io.EOF
	}
	for i := range dest {
		value, isNull := r.res.RawValue(r.row, i)
		if isNull {
			dest[i] = nil
		} else {
			dest[i] = value
		}
	}
	r.row++
	return nil
}
