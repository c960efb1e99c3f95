package enginemock

import (
	"errors"
	"testing"

	"github.com/bcardiff/go-pq/engine"
)

func TestConnect_RecordsHandles(t *testing.T) {
	t.Parallel()

	eng, err := New(Config{SocketFD: 7})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	h1 := eng.Connect("host=a")
	h2 := eng.Connect("host=b")

	if len(eng.Handles) != 2 {
		t.Fatalf("expected 2 recorded handles, got %d", len(eng.Handles))
	}
	if eng.Handles[0].Conninfo != "host=a" || eng.Handles[1].Conninfo != "host=b" {
		t.Fatalf("conninfo not recorded: %q, %q", eng.Handles[0].Conninfo, eng.Handles[1].Conninfo)
	}
	if h1.Socket() != 7 || h2.Socket() != 7 {
		t.Fatal("configured socket descriptor not reported")
	}
}

func TestSendQueryParams_ScriptsAndValidates(t *testing.T) {
	t.Parallel()

	frame := &Frame{FrameStatus: engine.TuplesOK}
	eng, err := New(Config{
		QueryValidator: func(query string, params []engine.Param, resultFormat engine.Format) error {
			if query == "reject me" {
				return errors.New("scripted rejection")
			}
			return nil
		},
		Results: [][]*Frame{{frame}},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	h := eng.Connect("").(*Handle)

	if !h.SendQueryParams("SELECT 1", nil, engine.Text) {
		t.Fatal("valid submission was rejected")
	}
	if got := h.GetResult(); got != engine.Frame(frame) {
		t.Fatalf("expected the scripted frame, got %v", got)
	}
	if got := h.GetResult(); got != nil {
		t.Fatalf("expected a drained stream, got %v", got)
	}

	if h.SendQueryParams("reject me", nil, engine.Text) {
		t.Fatal("invalid submission was accepted")
	}
	if h.ErrorMessage() != "scripted rejection" {
		t.Fatalf("validator error not surfaced: %q", h.ErrorMessage())
	}
}

func TestEscaping(t *testing.T) {
	t.Parallel()

	eng, err := New(Config{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	h := eng.Connect("").(*Handle)

	if got, ok := h.EscapeLiteral("O'Brien"); !ok || got != "'O''Brien'" {
		t.Fatalf("literal mismatch: %q (%v)", got, ok)
	}
	if got, ok := h.EscapeLiteral(`a\b`); !ok || got != `E'a\\b'` {
		t.Fatalf("backslash literal mismatch: %q (%v)", got, ok)
	}
	if got, ok := h.EscapeIdentifier(`t"x`); !ok || got != `"t""x"` {
		t.Fatalf("identifier mismatch: %q (%v)", got, ok)
	}

	failing, err := New(Config{EscapeFail: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	hf := failing.Connect("").(*Handle)
	if _, ok := hf.EscapeLiteral("x"); ok {
		t.Fatal("EscapeFail was ignored")
	}
}

func TestFrame_ClearCount(t *testing.T) {
	t.Parallel()

	f := &Frame{FrameStatus: engine.CommandOK}
	f.Clear()
	f.Clear()
	if f.ClearCount != 2 {
		t.Fatalf("expected 2 recorded clears, got %d", f.ClearCount)
	}
}
