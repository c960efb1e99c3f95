package pq

import (
	"bytes"
	"testing"

	"github.com/bcardiff/go-pq/engine"
)

func TestEncodeParam(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name       string
		value      any
		wantFormat engine.Format
		wantBytes  []byte
	}{
		{"nil is a binary NULL", nil, engine.Binary, nil},
		{"bytes pass through", []byte{0x00, 0x01, 0xFF}, engine.Binary, []byte{0x00, 0x01, 0xFF}},
		{"empty bytes stay binary", []byte{}, engine.Binary, []byte{}},
		{"string", "hello", engine.Text, []byte("hello")},
		{"int", 42, engine.Text, []byte("42")},
		{"negative int", -7, engine.Text, []byte("-7")},
		{"float", 3.25, engine.Text, []byte("3.25")},
		{"bool", true, engine.Text, []byte("true")},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := encodeParam(tc.value)
			if got.Format != tc.wantFormat {
				t.Fatalf("format mismatch: want %v got %v", tc.wantFormat, got.Format)
			}
			if !bytes.Equal(got.Value, tc.wantBytes) {
				t.Fatalf("bytes mismatch: want %q got %q", tc.wantBytes, got.Value)
			}
		})
	}
}

func TestEncodeParams_PreservesOrder(t *testing.T) {
	t.Parallel()

	args := []any{"first", nil, []byte("third"), 4}
	params := encodeParams(args)

	if len(params) != len(args) {
		t.Fatalf("length mismatch: want %d got %d", len(args), len(params))
	}
	for i, arg := range args {
		want := encodeParam(arg)
		if params[i].Format != want.Format || !bytes.Equal(params[i].Value, want.Value) {
			t.Fatalf("param %d does not match its positional encoding", i)
		}
	}
}

func TestEncodeParams_Empty(t *testing.T) {
	t.Parallel()

	if got := encodeParams(nil); got != nil {
		t.Fatalf("expected nil params, got %v", got)
	}
}

func BenchmarkEncodeParams(b *testing.B) {
	args := []any{42, "a longer text value", nil, []byte{0xDE, 0xAD, 0xBE, 0xEF}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		encodeParams(args)
	}
}
