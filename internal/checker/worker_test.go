package checker_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlhealth/internal/checker"
	"urlhealth/internal/checker/mocks"
	"urlhealth/internal/domain"
	"urlhealth/internal/queue"
	"urlhealth/internal/storage"
)

const maxRetries = 3

type workerMocks struct {
	store     *mocks.MockStore
	cache     *mocks.MockCache
	prober    *mocks.MockProber
	publisher *mocks.MockPublisher
	recorder  *mocks.MockBusinessRecorder
}

func newWorker(t *testing.T) (*checker.Worker, workerMocks) {
	m := workerMocks{
		store:     mocks.NewMockStore(t),
		cache:     mocks.NewMockCache(t),
		prober:    mocks.NewMockProber(t),
		publisher: mocks.NewMockPublisher(t),
		recorder:  mocks.NewMockBusinessRecorder(t),
	}
	w := checker.NewWorker(
		m.store, m.cache, m.prober, m.publisher, m.recorder,
		slog.New(slog.DiscardHandler), maxRetries,
	)
	return w, m
}

func pendingCheck(id int64, url string) *domain.URLCheck {
	return &domain.URLCheck{
		ID:        id,
		URL:       url,
		BatchID:   uuid.New(),
		CheckedAt: time.Now(),
	}
}

func successOutcome(code int, seconds float64) domain.Outcome {
	return domain.Outcome{
		Kind: domain.OutcomeSuccess,
		CheckOutcome: domain.CheckOutcome{
			StatusCode:   &code,
			ResponseTime: &seconds,
			IsReachable:  true,
		},
	}
}

func TestProcess_RecordNotFound(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()

	m.store.EXPECT().GetCheckByID(ctx, int64(404)).Return(nil, storage.ErrNotFound)

	result, err := w.Process(ctx, queue.Job{RecordID: 404})
	require.NoError(t, err)
	assert.Equal(t, checker.StatusNotFound, result.Status)
}

func TestProcess_StoreError(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()

	m.store.EXPECT().GetCheckByID(ctx, int64(1)).Return(nil, errors.New("connection reset"))

	result, err := w.Process(ctx, queue.Job{RecordID: 1})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestProcess_CacheHit(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(1, "https://example.com")
	cached := successOutcome(200, 0.1).CheckOutcome

	m.store.EXPECT().GetCheckByID(ctx, int64(1)).Return(check, nil)
	m.cache.EXPECT().Get("https://example.com").Return(cached, true)
	m.store.EXPECT().UpdateCheckResult(ctx, int64(1), cached).Return(nil)
	m.recorder.EXPECT().RecordBusiness("cache_hit", 1.0, map[string]string{"url": "https://example.com"})

	result, err := w.Process(ctx, queue.Job{RecordID: 1})
	require.NoError(t, err)
	assert.Equal(t, checker.StatusSuccess, result.Status)
	assert.True(t, result.Cached)
	assert.Equal(t, 200, *result.StatusCode)
}

func TestProcess_CacheMissSuccessfulProbe(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(2, "https://example.com")
	outcome := successOutcome(200, 0.25)

	m.store.EXPECT().GetCheckByID(ctx, int64(2)).Return(check, nil)
	m.cache.EXPECT().Get("https://example.com").Return(domain.CheckOutcome{}, false)
	m.recorder.EXPECT().RecordBusiness("cache_miss", 1.0, map[string]string{"url": "https://example.com"})
	m.prober.EXPECT().Probe(ctx, "https://example.com").Return(outcome)
	m.store.EXPECT().UpdateCheckResult(ctx, int64(2), outcome.CheckOutcome).Return(nil)
	m.cache.EXPECT().Set("https://example.com", outcome.CheckOutcome)
	m.recorder.EXPECT().RecordBusiness("probe_completed", 1.0, map[string]string{
		"url":       "https://example.com",
		"reachable": "true",
	})

	result, err := w.Process(ctx, queue.Job{RecordID: 2})
	require.NoError(t, err)
	assert.Equal(t, checker.StatusSuccess, result.Status)
	assert.False(t, result.Cached)
}

func TestProcess_ClassifiedFailureNotCached(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(3, "https://expired.example.com")
	outcome := domain.Outcome{
		Kind:         domain.OutcomeTLS,
		CheckOutcome: domain.CheckOutcome{ErrorMessage: "SSL Certificate Error"},
	}

	m.store.EXPECT().GetCheckByID(ctx, int64(3)).Return(check, nil)
	m.cache.EXPECT().Get(check.URL).Return(domain.CheckOutcome{}, false)
	m.recorder.EXPECT().RecordBusiness("cache_miss", 1.0, map[string]string{"url": check.URL})
	m.prober.EXPECT().Probe(ctx, check.URL).Return(outcome)
	m.store.EXPECT().UpdateCheckResult(ctx, int64(3), outcome.CheckOutcome).Return(nil)
	m.recorder.EXPECT().RecordBusiness("probe_completed", 1.0, map[string]string{
		"url":       check.URL,
		"reachable": "false",
	})

	result, err := w.Process(ctx, queue.Job{RecordID: 3})
	require.NoError(t, err)
	assert.Equal(t, checker.StatusFailed, result.Status)
	assert.Equal(t, "SSL Certificate Error", result.ErrorMessage)
	// cache.Set must not have been called: only reachable outcomes are cached.
}

func TestProcess_UnexpectedFailureSchedulesRetry(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(4, "https://flaky.example.com")
	outcome := domain.Outcome{
		Kind:         domain.OutcomeUnexpected,
		CheckOutcome: domain.CheckOutcome{ErrorMessage: "An unexpected error occurred"},
		Cause:        errors.New("stream reset"),
	}

	m.store.EXPECT().GetCheckByID(ctx, int64(4)).Return(check, nil)
	m.cache.EXPECT().Get(check.URL).Return(domain.CheckOutcome{}, false)
	m.recorder.EXPECT().RecordBusiness("cache_miss", 1.0, map[string]string{"url": check.URL})
	m.prober.EXPECT().Probe(ctx, check.URL).Return(outcome)
	m.publisher.EXPECT().PublishAfter(queue.Job{RecordID: 4, Attempt: 2}, 2*time.Second)

	result, err := w.Process(ctx, queue.Job{RecordID: 4, Attempt: 1})
	require.NoError(t, err)
	assert.Equal(t, checker.StatusRetrying, result.Status)
}

func TestProcess_RetryBackoffDoubles(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(5, "https://flaky.example.com")
	outcome := domain.Outcome{
		Kind:         domain.OutcomeUnexpected,
		CheckOutcome: domain.CheckOutcome{ErrorMessage: "An unexpected error occurred"},
		Cause:        errors.New("stream reset"),
	}

	m.store.EXPECT().GetCheckByID(ctx, int64(5)).Return(check, nil).Twice()
	m.cache.EXPECT().Get(check.URL).Return(domain.CheckOutcome{}, false).Twice()
	m.recorder.EXPECT().RecordBusiness("cache_miss", 1.0, map[string]string{"url": check.URL}).Twice()
	m.prober.EXPECT().Probe(ctx, check.URL).Return(outcome).Twice()
	m.publisher.EXPECT().PublishAfter(queue.Job{RecordID: 5, Attempt: 1}, 1*time.Second)
	m.publisher.EXPECT().PublishAfter(queue.Job{RecordID: 5, Attempt: 3}, 4*time.Second)

	_, err := w.Process(ctx, queue.Job{RecordID: 5, Attempt: 0})
	require.NoError(t, err)
	_, err = w.Process(ctx, queue.Job{RecordID: 5, Attempt: 2})
	require.NoError(t, err)
}

func TestProcess_RetriesExhausted(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(6, "https://flaky.example.com")
	outcome := domain.Outcome{
		Kind:         domain.OutcomeUnexpected,
		CheckOutcome: domain.CheckOutcome{ErrorMessage: "An unexpected error occurred"},
		Cause:        errors.New("stream reset"),
	}

	m.store.EXPECT().GetCheckByID(ctx, int64(6)).Return(check, nil)
	m.cache.EXPECT().Get(check.URL).Return(domain.CheckOutcome{}, false)
	m.recorder.EXPECT().RecordBusiness("cache_miss", 1.0, map[string]string{"url": check.URL})
	m.prober.EXPECT().Probe(ctx, check.URL).Return(outcome)
	m.store.EXPECT().UpdateCheckResult(ctx, int64(6), outcome.CheckOutcome).Return(nil)
	m.recorder.EXPECT().RecordBusiness("probe_completed", 1.0, map[string]string{
		"url":       check.URL,
		"reachable": "false",
	})

	// Attempt equals maxRetries: the outcome is persisted, not re-queued.
	result, err := w.Process(ctx, queue.Job{RecordID: 6, Attempt: maxRetries})
	require.NoError(t, err)
	assert.Equal(t, checker.StatusFailed, result.Status)
	assert.Equal(t, "An unexpected error occurred", result.ErrorMessage)
}

func TestProcess_PersistFailure(t *testing.T) {
	w, m := newWorker(t)
	ctx := context.Background()
	check := pendingCheck(7, "https://example.com")
	outcome := successOutcome(200, 0.1)

	m.store.EXPECT().GetCheckByID(ctx, int64(7)).Return(check, nil)
	m.cache.EXPECT().Get(check.URL).Return(domain.CheckOutcome{}, false)
	m.recorder.EXPECT().RecordBusiness("cache_miss", 1.0, map[string]string{"url": check.URL})
	m.prober.EXPECT().Probe(ctx, check.URL).Return(outcome)
	m.store.EXPECT().UpdateCheckResult(ctx, int64(7), outcome.CheckOutcome).Return(errors.New("disk full"))

	result, err := w.Process(ctx, queue.Job{RecordID: 7})
	assert.Error(t, err)
	assert.Nil(t, result)
}
