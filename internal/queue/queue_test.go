package queue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlhealth/internal/queue"
)

func TestPublish_JobsReachConsumers(t *testing.T) {
	q := queue.New(16)

	var mu sync.Mutex
	seen := make(map[int64]int)

	q.Start(context.Background(), 4, func(ctx context.Context, job queue.Job) {
		mu.Lock()
		seen[job.RecordID] = job.Attempt
		mu.Unlock()
	})

	for i := int64(1); i <= 10; i++ {
		require.NoError(t, q.Publish(queue.Job{RecordID: i, Attempt: 0}))
	}

	q.Stop()

	assert.Len(t, seen, 10)
	assert.Equal(t, 0, seen[7])
}

func TestPublish_FullBuffer(t *testing.T) {
	q := queue.New(1)
	// No consumers running: the second publish has nowhere to go.
	require.NoError(t, q.Publish(queue.Job{RecordID: 1}))

	err := q.Publish(queue.Job{RecordID: 2})
	assert.ErrorIs(t, err, queue.ErrQueueFull)
}

func TestPublish_AfterStop(t *testing.T) {
	q := queue.New(16)
	q.Start(context.Background(), 1, func(ctx context.Context, job queue.Job) {})
	q.Stop()

	err := q.Publish(queue.Job{RecordID: 1})
	assert.ErrorIs(t, err, queue.ErrQueueClosed)
}

func TestPublishAfter_DeliversAfterDelay(t *testing.T) {
	q := queue.New(16)

	delivered := make(chan queue.Job, 1)
	q.Start(context.Background(), 1, func(ctx context.Context, job queue.Job) {
		delivered <- job
	})

	start := time.Now()
	q.PublishAfter(queue.Job{RecordID: 42, Attempt: 2}, 50*time.Millisecond)

	select {
	case job := <-delivered:
		assert.Equal(t, int64(42), job.RecordID)
		assert.Equal(t, 2, job.Attempt)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("delayed job never delivered")
	}

	q.Stop()
}

func TestStop_WaitsForDelayedPublishes(t *testing.T) {
	q := queue.New(16)

	var mu sync.Mutex
	var processed []int64

	q.Start(context.Background(), 1, func(ctx context.Context, job queue.Job) {
		mu.Lock()
		processed = append(processed, job.RecordID)
		mu.Unlock()
	})

	q.PublishAfter(queue.Job{RecordID: 1}, 30*time.Millisecond)
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int64{1}, processed)
}

func TestStop_Idempotent(t *testing.T) {
	q := queue.New(16)
	q.Start(context.Background(), 1, func(ctx context.Context, job queue.Job) {})

	q.Stop()
	assert.NotPanics(t, q.Stop)
}

func TestStop_RefusesNewTimersWhileDraining(t *testing.T) {
	q := queue.New(16)

	var mu sync.Mutex
	var processed []int64
	release := make(chan struct{})

	// The consumer is held mid-job so it is still draining when Stop is
	// already waiting on the pending timer; its re-publish must be refused
	// rather than grow the timer set under Stop's feet.
	q.Start(context.Background(), 1, func(ctx context.Context, job queue.Job) {
		if job.RecordID == 1 {
			<-release
			q.PublishAfter(queue.Job{RecordID: 2}, time.Millisecond)
		}
		mu.Lock()
		processed = append(processed, job.RecordID)
		mu.Unlock()
	})

	require.NoError(t, q.Publish(queue.Job{RecordID: 1}))
	q.PublishAfter(queue.Job{RecordID: 3}, 50*time.Millisecond)

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()

	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, processed, int64(1))
	assert.Contains(t, processed, int64(3), "timer scheduled before Stop must still deliver")
	assert.NotContains(t, processed, int64(2), "timer scheduled after Stop began must be dropped")
}

func TestStop_DrainsBufferedJobs(t *testing.T) {
	q := queue.New(16)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, q.Publish(queue.Job{RecordID: i}))
	}

	var mu sync.Mutex
	count := 0
	q.Start(context.Background(), 2, func(ctx context.Context, job queue.Job) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	q.Stop()
	assert.Equal(t, 5, count)
}
