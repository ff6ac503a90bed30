package async_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"teamchat/internal/domain"
	"teamchat/internal/infrastructure/async"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkerPool_RunsTasks(t *testing.T) {
	pool := async.NewWorkerPool(context.Background(), 3, time.Second, zap.NewNop())

	var wg sync.WaitGroup
	var n atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		if !pool.Submit(func(ctx context.Context) {
			defer wg.Done()
			n.Add(1)
		}) {
			t.Fatalf("task rejected")
		}
	}
	wg.Wait()
	pool.Shutdown()

	if n.Load() != 10 {
		t.Fatalf("expected 10 tasks, ran %d", n.Load())
	}
}

func TestWorkerPool_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	pool := async.NewWorkerPool(context.Background(), 1, time.Second, zap.New(core))

	pool.Submit(func(ctx context.Context) { panic("boom") })

	done := make(chan struct{})
	pool.Submit(func(ctx context.Context) { close(done) })
	<-done
	pool.Shutdown()

	if logs.FilterMessage("task panicked").Len() != 1 {
		t.Fatalf("expected panic to be logged, got %v", logs.All())
	}
}

func TestWorkerPool_SubmitAfterShutdown(t *testing.T) {
	pool := async.NewWorkerPool(context.Background(), 2, time.Second, zap.NewNop())
	pool.Shutdown()
	pool.Shutdown()

	if pool.Submit(func(ctx context.Context) {}) {
		t.Fatalf("closed pool must reject tasks")
	}
}

func TestAsyncEventBus_LogsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := async.NewAsyncEventBus(context.Background(), 2, zap.New(core))

	bus.Publish(context.Background(), domain.Event{
		Type:    domain.EventTeamMembersFetched,
		Payload: map[string]any{"team_id": "team_1", "received": 1},
	})

	deadline := time.Now().Add(2 * time.Second)
	for logs.FilterMessage("domain_event").Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	bus.Close()

	entries := logs.FilterMessage("domain_event").All()
	if len(entries) != 1 {
		t.Fatalf("expected one domain_event log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["type"] != domain.EventTeamMembersFetched || fields["team_id"] != "team_1" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
