package worker

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, workers, queueSize int) (*Pool[int], *clockwork.FakeClock) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	clock := clockwork.NewFakeClockAt(time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC))
	return NewPool[int]("test", workers, queueSize, clock, logger), clock
}

func waitResult[T any](t *testing.T, ch <-chan Result[T]) Result[T] {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
		return Result[T]{}
	}
}

func TestPool_RunsJobAndRecordsStatus(t *testing.T) {
	pool, clock := newTestPool(t, 2, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	id, done, err := pool.Submit(func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)

	res := waitResult(t, done)
	require.NoError(t, res.Err)
	assert.Equal(t, 42, res.Value)

	snap, ok := pool.Status(id)
	require.True(t, ok)
	assert.Equal(t, StatusDone, snap.Status)
	assert.Equal(t, 42, snap.Value)
	assert.Equal(t, clock.Now(), snap.SubmittedAt)
	assert.Equal(t, clock.Now(), snap.FinishedAt)
}

func TestPool_FailedJob(t *testing.T) {
	pool, _ := newTestPool(t, 1, 1)
	pool.Start(context.Background())
	defer pool.Stop()

	boom := errors.New("boom")
	id, done, err := pool.Submit(func(context.Context) (int, error) { return 0, boom })
	require.NoError(t, err)

	res := waitResult(t, done)
	assert.ErrorIs(t, res.Err, boom)
	snap, _ := pool.Status(id)
	assert.Equal(t, StatusFailed, snap.Status)
	assert.ErrorIs(t, snap.Err, boom)
}

func TestPool_PanicBecomesError(t *testing.T) {
	pool, _ := newTestPool(t, 1, 1)
	pool.Start(context.Background())
	defer pool.Stop()

	_, done, err := pool.Submit(func(context.Context) (int, error) { panic("bad row") })
	require.NoError(t, err)

	res := waitResult(t, done)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "bad row")
}

func TestPool_QueueFull(t *testing.T) {
	pool, _ := newTestPool(t, 1, 1)

	id, _, err := pool.Submit(func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	_, _, err = pool.Submit(func(context.Context) (int, error) { return 2, nil })
	assert.ErrorIs(t, err, ErrQueueFull)

	snap, ok := pool.Status(id)
	require.True(t, ok)
	assert.Equal(t, StatusQueued, snap.Status)
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool, _ := newTestPool(t, 1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	_, _, err := pool.Submit(func(context.Context) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPool_StopDrainsQueue(t *testing.T) {
	pool, _ := newTestPool(t, 1, 3)

	var results []<-chan Result[int]
	for i := 0; i < 3; i++ {
		v := i
		_, done, err := pool.Submit(func(context.Context) (int, error) { return v, nil })
		require.NoError(t, err)
		results = append(results, done)
	}
	pool.Start(context.Background())
	pool.Stop()

	for i, done := range results {
		assert.Equal(t, i, waitResult(t, done).Value)
	}
}

func TestPool_UnknownJob(t *testing.T) {
	pool, _ := newTestPool(t, 1, 1)

	_, ok := pool.Status("missing")

	assert.False(t, ok)
}

func TestPool_JobSeesItsID(t *testing.T) {
	pool, _ := newTestPool(t, 1, 1)
	pool.Start(context.Background())
	defer pool.Stop()

	seen := make(chan string, 1)
	id, done, err := pool.Submit(func(ctx context.Context) (int, error) {
		seen <- JobID(ctx)
		return 0, nil
	})
	require.NoError(t, err)
	waitResult(t, done)

	assert.Equal(t, id, <-seen)
}

func TestPool_FinishedStatusExpires(t *testing.T) {
	pool, clock := newTestPool(t, 1, 4)
	pool.WithRetention(time.Hour)
	pool.Start(context.Background())
	defer pool.Stop()

	oldID, done, err := pool.Submit(func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	waitResult(t, done)

	clock.Advance(30 * time.Minute)
	_, ok := pool.Status(oldID)
	assert.True(t, ok)

	clock.Advance(31 * time.Minute)
	_, ok = pool.Status(oldID)
	assert.False(t, ok)

	newID, done, err := pool.Submit(func(context.Context) (int, error) { return 2, nil })
	require.NoError(t, err)
	waitResult(t, done)

	pool.mu.RLock()
	_, kept := pool.jobs[oldID]
	count := len(pool.jobs)
	pool.mu.RUnlock()
	assert.False(t, kept)
	assert.Equal(t, 1, count)
	_, ok = pool.Status(newID)
	assert.True(t, ok)
}

func TestPool_QueuedStatusNeverExpires(t *testing.T) {
	pool, clock := newTestPool(t, 1, 4)
	pool.WithRetention(time.Minute)

	id, _, err := pool.Submit(func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	clock.Advance(time.Hour)

	snap, ok := pool.Status(id)
	require.True(t, ok)
	assert.Equal(t, StatusQueued, snap.Status)
}
