package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/shenikar/road_risk_advisor/internal/observability"
)

// ErrSuperseded - загрузку вытеснил более новый запрос по тому же ключу
var ErrSuperseded = errors.New("superseded by a newer request")

type inflight struct {
	seq    uint64
	cancel context.CancelFunc
}

// Latest выполняет загрузки так, что по каждому ключу актуальна только последняя.
// Более новая загрузка отменяет контекст предыдущей, а ее результат отбрасывается.
type Latest[T any] struct {
	mu      sync.Mutex
	seq     uint64
	running map[string]inflight
	metrics *observability.Metrics
}

func NewLatest[T any](metrics *observability.Metrics) *Latest[T] {
	return &Latest[T]{
		running: make(map[string]inflight),
		metrics: metrics,
	}
}

// Load запускает fn в отдельной горутине. Канал получит ровно один результат.
func (l *Latest[T]) Load(ctx context.Context, key string, fn Job[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)
	jobCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	l.seq++
	seq := l.seq
	if prev, ok := l.running[key]; ok {
		prev.cancel()
	}
	l.running[key] = inflight{seq: seq, cancel: cancel}
	l.mu.Unlock()

	go func() {
		defer cancel()
		value, err := fn(jobCtx)

		l.mu.Lock()
		current, ok := l.running[key]
		latest := ok && current.seq == seq
		if latest {
			delete(l.running, key)
		}
		l.mu.Unlock()

		if !latest {
			l.metrics.PageLoadsSuperseded.Inc()
			var zero T
			out <- Result[T]{Value: zero, Err: ErrSuperseded}
			return
		}
		out <- Result[T]{Value: value, Err: err}
	}()
	return out
}
