package pq

import (
	"testing"

	"github.com/bcardiff/go-pq/engine"
	"github.com/bcardiff/go-pq/engine/enginemock"
)

func BenchmarkExecAll(b *testing.B) {
	eng, err := enginemock.New(enginemock.Config{
		ExecFrame: &enginemock.Frame{FrameStatus: engine.CommandOK},
	})
	if err != nil {
		b.Fatalf("enginemock: %v", err)
	}

	conn, err := Connect(Config{Engine: eng, NewWaiter: countingFactory(new(int))}, "host=localhost")
	if err != nil {
		b.Fatalf("Connect returned error: %v", err)
	}
	defer conn.Finish()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := conn.ExecAll("SET search_path TO public"); err != nil {
			b.Fatalf("ExecAll failed: %v", err)
		}
	}
}
