package async

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"teamchat/internal/domain"
)

const eventTimeout = 2 * time.Second

type AsyncEventBus struct {
	pool *WorkerPool
	log  *zap.Logger
}

func NewAsyncEventBus(ctx context.Context, poolSize int, log *zap.Logger) *AsyncEventBus {
	return &AsyncEventBus{
		pool: NewWorkerPool(ctx, poolSize, eventTimeout, log),
		log:  log,
	}
}

func (b *AsyncEventBus) Publish(ctx context.Context, e domain.Event) {
	accepted := b.pool.Submit(func(_ context.Context) {
		b.log.Info("domain_event", eventFields(e)...)
	})
	if !accepted {
		b.log.Warn("event dropped, bus closed", zap.String("type", e.Type))
	}
}

func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}

func eventFields(e domain.Event) []zap.Field {
	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("type", e.Type))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, e.Payload[k]))
	}
	return fields
}
