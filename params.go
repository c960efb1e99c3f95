package pq

import (
	"fmt"

	"github.com/bcardiff/go-pq/engine"
)

// encodeParam converts one bound value into its wire representation. The
// function is total: every value encodes to something.
//
//   - nil encodes as a zero-length binary value, representing SQL NULL.
//   - []byte passes through as binary, unchanged.
//   - everything else is sent as the text form of its string conversion,
//     leaving the server to infer the type.
//
// Extending the driver to new semantic types means adding a case here, not
// elsewhere.
func encodeParam(value any) engine.Param {
	switch v := value.(type) {
	case nil:
		return engine.Param{Format: engine.Binary}
	case []byte:
		return engine.Param{Format: engine.Binary, Value: v}
	default:
		return engine.Param{Format: engine.Text, Value: []byte(fmt.Sprint(v))}
	}
}

// encodeParams encodes every bound value in order: args[i] becomes protocol
// parameter i.
func encodeParams(args []any) []engine.Param {
	if len(args) == 0 {
		return nil
	}
	params := make([]engine.Param, len(args))
	for i, a := range args {
		params[i] = encodeParam(a)
	}
	return params
}
