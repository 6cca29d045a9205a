package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull  = errors.New("job queue is full")
	ErrPoolClosed = errors.New("worker pool is closed")
)

// Status - состояние фоновой задачи
type Status string

const (
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Job - единица фоновой работы
type Job[T any] func(ctx context.Context) (T, error)

// Result - итог выполнения задачи
type Result[T any] struct {
	Value T
	Err   error
}

// Snapshot - состояние задачи на момент запроса
type Snapshot[T any] struct {
	ID          string
	Status      Status
	Value       T
	Err         error
	SubmittedAt time.Time
	FinishedAt  time.Time
}

type jobIDKey struct{}

// JobID возвращает ID задачи, выполняемой с этим контекстом
func JobID(ctx context.Context) string {
	id, _ := ctx.Value(jobIDKey{}).(string)
	return id
}

type task[T any] struct {
	id   string
	job  Job[T]
	done chan Result[T]
}

// Pool выполняет задачи фиксированным числом горутин и хранит их статусы
type Pool[T any] struct {
	name    string
	workers int
	queue   chan task[T]
	clock   clockwork.Clock
	logger  *logrus.Logger
	// Сколько хранить статус завершенной задачи; 0 - бессрочно
	retention time.Duration

	mu     sync.RWMutex
	jobs   map[string]*Snapshot[T]
	closed bool

	wg sync.WaitGroup
}

func NewPool[T any](name string, workers, queueSize int, clock clockwork.Clock, logger *logrus.Logger) *Pool[T] {
	if workers < 1 {
		workers = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pool[T]{
		name:    name,
		workers: workers,
		queue:   make(chan task[T], queueSize),
		clock:   clock,
		logger:  logger,
		jobs:    make(map[string]*Snapshot[T]),
	}
}

// WithRetention задает срок хранения статусов завершенных задач. Вызывать до Start.
func (p *Pool[T]) WithRetention(ttl time.Duration) *Pool[T] {
	p.retention = ttl
	return p
}

// Start запускает воркеры. Задачи выполняются с контекстом ctx.
func (p *Pool[T]) Start(ctx context.Context) {
	p.logger.WithFields(logrus.Fields{"pool": p.name, "workers": p.workers}).Info("Starting worker pool...")
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for t := range p.queue {
				p.run(ctx, t)
			}
		}()
	}
}

// Stop перестает принимать задачи и ждет завершения уже поставленных
func (p *Pool[T]) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.WithField("pool", p.name).Info("Worker pool stopped.")
}

// Submit ставит задачу в очередь. Канал получит ровно один результат.
func (p *Pool[T]) Submit(job Job[T]) (string, <-chan Result[T], error) {
	t := task[T]{
		id:   uuid.New().String(),
		job:  job,
		done: make(chan Result[T], 1),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return "", nil, ErrPoolClosed
	}
	p.pruneLocked()
	select {
	case p.queue <- t:
	default:
		return "", nil, ErrQueueFull
	}
	p.jobs[t.id] = &Snapshot[T]{
		ID:          t.id,
		Status:      StatusQueued,
		SubmittedAt: p.clock.Now(),
	}
	return t.id, t.done, nil
}

// Status возвращает копию состояния задачи
func (p *Pool[T]) Status(id string) (Snapshot[T], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.jobs[id]
	if !ok || p.expired(s) {
		return Snapshot[T]{}, false
	}
	return *s, true
}

func (p *Pool[T]) expired(s *Snapshot[T]) bool {
	if p.retention <= 0 || s.FinishedAt.IsZero() {
		return false
	}
	return p.clock.Since(s.FinishedAt) > p.retention
}

// pruneLocked удаляет просроченные статусы; вызывается под p.mu
func (p *Pool[T]) pruneLocked() {
	if p.retention <= 0 {
		return
	}
	for id, s := range p.jobs {
		if p.expired(s) {
			delete(p.jobs, id)
		}
	}
}

func (p *Pool[T]) run(ctx context.Context, t task[T]) {
	log := p.logger.WithFields(logrus.Fields{"pool": p.name, "job_id": t.id})
	p.setStatus(t.id, func(s *Snapshot[T]) { s.Status = StatusRunning })
	log.Debug("Job started")

	value, err := p.safeRun(context.WithValue(ctx, jobIDKey{}, t.id), t.job)

	p.setStatus(t.id, func(s *Snapshot[T]) {
		s.Value = value
		s.Err = err
		s.FinishedAt = p.clock.Now()
		if err != nil {
			s.Status = StatusFailed
		} else {
			s.Status = StatusDone
		}
	})
	if err != nil {
		log.WithError(err).Error("Job failed")
	} else {
		log.Info("Job finished")
	}
	t.done <- Result[T]{Value: value, Err: err}
}

func (p *Pool[T]) safeRun(ctx context.Context, job Job[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job(ctx)
}

func (p *Pool[T]) setStatus(id string, update func(*Snapshot[T])) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.jobs[id]; ok {
		update(s)
	}
}
