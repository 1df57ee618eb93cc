package queue

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Job is one check invocation: the record to process and how many retry
// attempts preceded this one.
type Job struct {
	RecordID int64
	Attempt  int
}

// HandlerFunc consumes a single job.
type HandlerFunc func(ctx context.Context, job Job)

// Queue is an in-process at-least-once job queue: a buffered channel fed by
// Publish and drained by a fixed pool of consumer goroutines. Delayed
// publishes back retry-with-backoff; a worker re-publishes its own job, so a
// given record id never has more than one attempt in flight.
type Queue struct {
	jobs     chan Job
	wg       sync.WaitGroup
	timers   sync.WaitGroup
	stopOnce sync.Once
	mu       sync.RWMutex
	stopping bool
	closed   bool
}

func New(bufferSize int) *Queue {
	return &Queue{
		jobs: make(chan Job, bufferSize),
	}
}

// Start launches count consumers invoking fn for every job. The context is
// passed through to fn; consumers themselves only exit when the queue is
// stopped, so accepted jobs are always drained.
func (q *Queue) Start(ctx context.Context, count int, fn HandlerFunc) {
	q.wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer q.wg.Done()
			for job := range q.jobs {
				fn(ctx, job)
			}
		}()
	}
}

// Publish enqueues a job without blocking. A full buffer surfaces
// ErrQueueFull so the caller can record the dispatch failure instead of
// stalling the request path.
func (q *Queue) Publish(job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// PublishAfter enqueues a job after the given delay. Once Stop has begun,
// new delays are refused so a draining consumer cannot grow the timer set
// Stop is waiting on; refused or late jobs are dropped and the record keeps
// its last-written state.
func (q *Queue) PublishAfter(job Job, delay time.Duration) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopping {
		return
	}
	q.timers.Add(1)
	time.AfterFunc(delay, func() {
		defer q.timers.Done()
		_ = q.Publish(job)
	})
}

// Stop waits for pending delayed publishes, then closes the queue and waits
// for consumers to drain the remaining jobs. The stopping flag is flipped
// under the lock before waiting on timers, so every timer counted by Wait
// was added beforehand and no Add can race the Wait.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopping = true
		q.mu.Unlock()

		q.timers.Wait()

		q.mu.Lock()
		q.closed = true
		close(q.jobs)
		q.mu.Unlock()

		q.wg.Wait()
	})
}
