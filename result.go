package pq

import (
	"github.com/bcardiff/go-pq/engine"
)

// FieldType names an expected result column type. The driver carries the
// expected types through to the Result untouched; interpreting them is the
// concern of whatever materializes values out of the raw bytes.
type FieldType string

// Result wraps the first successfully validated frame of a query.
//
// A Result owns its frame: Close releases it, and the release happens at
// most once no matter how many times Close is called. Values stay in the
// engine's text wire format; decoding them is out of the driver's scope.
type Result struct {
	types  []FieldType
	frame  engine.Frame
	closed bool
}

// NewResult materializes a frame into a typed Result. An empty types slice
// means dynamic typing.
func NewResult(types []FieldType, frame engine.Frame) *Result {
	return &Result{types: types, frame: frame}
}

// Types returns the expected column types the query was issued with.
func (r *Result) Types() []FieldType { return r.types }

// Columns returns the column names of the result.
func (r *Result) Columns() []string {
	cols := make([]string, r.frame.Fields())
	for i := range cols {
		cols[i] = r.frame.FieldName(i)
	}
	return cols
}

// Len returns the number of rows in the result.
func (r *Result) Len() int { return r.frame.Tuples() }

// RawValue returns the raw bytes of the value at row, col. The second
// return reports SQL NULL, in which case the bytes are nil.
func (r *Result) RawValue(row, col int) ([]byte, bool) {
	if r.frame.IsNull(row, col) {
		return nil, true
	}
	return r.frame.Value(row, col), false
}

// Close releases the underlying frame. Only the first call releases;
// subsequent calls are no-ops.
func (r *Result) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.frame.Clear()
	return nil
}
