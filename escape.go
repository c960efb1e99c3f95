package pq

import (
	"encoding/hex"
	"strings"
)

// EscapeLiteral quotes s for safe interpolation into a query as a SQL
// literal. A connection-level failure in the engine yields a
// *ConnectionError.
func (c *Conn) EscapeLiteral(s string) (string, error) {
	if c.handle == nil {
		return "", ErrConnClosed
	}
	out, ok := c.handle.EscapeLiteral(s)
	if !ok {
		return "", &ConnectionError{Message: c.handle.ErrorMessage()}
	}
	return out, nil
}

// EscapeIdentifier quotes s for safe interpolation into a query as a SQL
// identifier, such as a table or column name.
func (c *Conn) EscapeIdentifier(s string) (string, error) {
	if c.handle == nil {
		return "", ErrConnClosed
	}
	out, ok := c.handle.EscapeIdentifier(s)
	if !ok {
		return "", &ConnectionError{Message: c.handle.ErrorMessage()}
	}
	return out, nil
}

// EscapeByteaLiteral quotes binary data as a hex bytea literal of the form
// '\x...'. It needs no connection: the output is built directly and is
// always exactly 2*len(data)+4 bytes long.
func EscapeByteaLiteral(data []byte) string {
	var b strings.Builder
	b.Grow(2*len(data) + 4)
	b.WriteString(`'\x`)
	b.WriteString(hex.EncodeToString(data))
	b.WriteByte('\'')
	return b.String()
}
