package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"urlhealth/internal/domain"
	"urlhealth/internal/queue"
	"urlhealth/internal/storage"
)

// Result is what one worker invocation reports back to its consumer loop.
type Result struct {
	URL          string   `json:"url"`
	Status       string   `json:"status"`
	IsReachable  bool     `json:"is_reachable"`
	StatusCode   *int     `json:"status_code"`
	ResponseTime *float64 `json:"response_time"`
	ErrorMessage string   `json:"error_message"`
	Cached       bool     `json:"cached"`
}

const (
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusRetrying = "retrying"
	StatusNotFound = "not_found"
)

// Worker processes one queued check: load the record, consult the cache,
// probe on a miss, persist the outcome, and cache reachable results. An
// unexpected probe failure re-publishes the same job with exponential
// backoff instead of persisting anything.
type Worker struct {
	store      Store
	cache      Cache
	prober     Prober
	publisher  Publisher
	recorder   BusinessRecorder
	logger     *slog.Logger
	maxRetries int
}

func NewWorker(
	store Store,
	cache Cache,
	prober Prober,
	publisher Publisher,
	recorder BusinessRecorder,
	logger *slog.Logger,
	maxRetries int,
) *Worker {
	return &Worker{
		store:      store,
		cache:      cache,
		prober:     prober,
		publisher:  publisher,
		recorder:   recorder,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Process runs a single check attempt. The returned error is only for
// infrastructure failures (store unreachable); probe failures are data,
// recorded on the check itself.
func (w *Worker) Process(ctx context.Context, job queue.Job) (*Result, error) {
	check, err := w.store.GetCheckByID(ctx, job.RecordID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Terminal: a job for a record that does not exist is never retried.
			w.logger.Warn("check record not found", slog.Int64("record_id", job.RecordID))
			return &Result{Status: StatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to load check %d: %w", job.RecordID, err)
	}

	if outcome, found := w.cache.Get(check.URL); found {
		if err := w.store.UpdateCheckResult(ctx, check.ID, outcome); err != nil {
			return nil, fmt.Errorf("failed to persist cached result for check %d: %w", check.ID, err)
		}
		w.recorder.RecordBusiness("cache_hit", 1, map[string]string{"url": check.URL})
		return newResult(check.URL, outcome, true), nil
	}
	w.recorder.RecordBusiness("cache_miss", 1, map[string]string{"url": check.URL})

	outcome := w.prober.Probe(ctx, check.URL)

	if outcome.Retryable() && job.Attempt < w.maxRetries {
		delay := time.Duration(1<<uint(job.Attempt)) * time.Second
		w.logger.Warn("unexpected probe failure, scheduling retry",
			slog.String("url", check.URL),
			slog.Int("attempt", job.Attempt),
			slog.Duration("delay", delay),
			slog.String("error", fmt.Sprint(outcome.Cause)))
		w.publisher.PublishAfter(queue.Job{RecordID: job.RecordID, Attempt: job.Attempt + 1}, delay)
		return &Result{URL: check.URL, Status: StatusRetrying}, nil
	}

	// Either a classified outcome, or retries are exhausted; in both cases
	// the record gets a terminal state instead of staying pending forever.
	if err := w.store.UpdateCheckResult(ctx, check.ID, outcome.CheckOutcome); err != nil {
		return nil, fmt.Errorf("failed to persist result for check %d: %w", check.ID, err)
	}

	if outcome.IsReachable {
		w.cache.Set(check.URL, outcome.CheckOutcome)
	}

	w.recorder.RecordBusiness("probe_completed", 1, map[string]string{
		"url":       check.URL,
		"reachable": fmt.Sprintf("%t", outcome.IsReachable),
	})

	return newResult(check.URL, outcome.CheckOutcome, false), nil
}

// Consume adapts Process to the queue's handler signature.
func (w *Worker) Consume(ctx context.Context, job queue.Job) {
	result, err := w.Process(ctx, job)
	if err != nil {
		w.logger.Error("check processing failed",
			slog.Int64("record_id", job.RecordID),
			slog.String("error", err.Error()))
		return
	}
	w.logger.Info("check processed",
		slog.Int64("record_id", job.RecordID),
		slog.String("url", result.URL),
		slog.String("status", result.Status),
		slog.Bool("cached", result.Cached))
}

func newResult(url string, outcome domain.CheckOutcome, cached bool) *Result {
	status := StatusFailed
	if outcome.IsReachable {
		status = StatusSuccess
	}
	return &Result{
		URL:          url,
		Status:       status,
		IsReachable:  outcome.IsReachable,
		StatusCode:   outcome.StatusCode,
		ResponseTime: outcome.ResponseTime,
		ErrorMessage: outcome.ErrorMessage,
		Cached:       cached,
	}
}
