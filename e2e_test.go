package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlhealth/internal/cache"
	"urlhealth/internal/checker"
	"urlhealth/internal/config"
	"urlhealth/internal/domain"
	"urlhealth/internal/handler"
	"urlhealth/internal/metrics"
	"urlhealth/internal/prober"
	"urlhealth/internal/queue"
	"urlhealth/internal/service"
	"urlhealth/internal/storage/sqlite"
	"urlhealth/internal/validation"
)

type testApp struct {
	e     *echo.Echo
	queue *queue.Queue
	cache *cache.ResultCache
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	store, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "checks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	resultCache, err := cache.New(20, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(resultCache.Close)

	recorder := metrics.NewRecorder(nil, &config.MetricsConfig{Enabled: true}, logger)
	t.Cleanup(recorder.Close)

	jobQueue := queue.New(256)
	worker := checker.NewWorker(
		store, resultCache,
		prober.New(2*time.Second, 10),
		jobQueue, recorder, logger, 3,
	)
	jobQueue.Start(ctx, 4, worker.Consume)

	svc := service.NewBatchService(store, jobQueue, logger, 10)
	validator := validation.NewURLValidator(2048, 100, true)

	e := echo.New()
	handler.New(svc, validator, logger).Register(e)

	return &testApp{e: e, queue: jobQueue, cache: resultCache}
}

func (a *testApp) submit(t *testing.T, urls []string) domain.CheckURLsResponse {
	t.Helper()

	body, err := json.Marshal(domain.CheckURLsRequest{URLs: urls})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check_urls", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp domain.CheckURLsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (a *testApp) status(t *testing.T, batchID string) (int, domain.BatchStatus) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/batch_status?batch_id="+batchID, nil)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var status domain.BatchStatus
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	}
	return rec.Code, status
}

func (a *testApp) results(t *testing.T, batchID string) []domain.URLCheck {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/batch_results?batch_id="+batchID, nil)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var checks []domain.URLCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	return checks
}

func (a *testApp) waitForBatch(t *testing.T, batchID string) domain.BatchStatus {
	t.Helper()

	deadline := time.After(10 * time.Second)
	for {
		code, status := a.status(t, batchID)
		if code == http.StatusOK && status.Pending == 0 {
			return status
		}
		select {
		case <-deadline:
			t.Fatalf("batch %s never completed: %+v", batchID, status)
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestEndToEnd_MixedBatch(t *testing.T) {
	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okServer.Close()

	errServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer errServer.Close()

	app := newTestApp(t)
	defer app.queue.Stop()

	resp := app.submit(t, []string{okServer.URL, errServer.URL, "http://nonexistent.invalid/"})
	require.Len(t, resp.URLs, 3)

	status := app.waitForBatch(t, resp.BatchID.String())
	assert.Equal(t, 3, status.Total)
	assert.Equal(t, 3, status.Completed)
	assert.InDelta(t, 1.0/3.0, status.SuccessRate, 1e-9)

	byURL := make(map[string]domain.URLCheck)
	for _, check := range app.results(t, resp.BatchID.String()) {
		byURL[check.URL] = check
	}
	require.Len(t, byURL, 3)

	ok := byURL[okServer.URL]
	require.NotNil(t, ok.StatusCode)
	assert.Equal(t, http.StatusOK, *ok.StatusCode)
	assert.True(t, ok.IsReachable)
	assert.Empty(t, ok.ErrorMessage)

	unavailable := byURL[errServer.URL]
	require.NotNil(t, unavailable.StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, *unavailable.StatusCode)
	assert.False(t, unavailable.IsReachable)

	missing := byURL["http://nonexistent.invalid/"]
	assert.Nil(t, missing.StatusCode)
	assert.False(t, missing.IsReachable)
	assert.Equal(t, "Domain does not exist", missing.ErrorMessage)
}

func TestEndToEnd_SecondBatchServedFromCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	app := newTestApp(t)
	defer app.queue.Stop()

	first := app.submit(t, []string{server.URL})
	app.waitForBatch(t, first.BatchID.String())

	// The worker caches after persisting, so the status poll can race the
	// cache write; give it a beat, then flush ristretto's set buffer.
	time.Sleep(50 * time.Millisecond)
	app.cache.Wait()

	second := app.submit(t, []string{server.URL})
	status := app.waitForBatch(t, second.BatchID.String())
	assert.Equal(t, 1, status.Completed)

	checks := app.results(t, second.BatchID.String())
	require.Len(t, checks, 1)
	assert.True(t, checks[0].IsReachable)
	assert.LessOrEqual(t, hits.Load(), int32(1))
}

func TestEndToEnd_LargeBatchIsChunked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	app := newTestApp(t)
	defer app.queue.Stop()

	urls := make([]string, 25)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/page/%d", server.URL, i)
	}

	resp := app.submit(t, urls)
	require.Len(t, resp.URLs, 25)

	status := app.waitForBatch(t, resp.BatchID.String())
	assert.Equal(t, 25, status.Total)
	assert.Equal(t, 25, status.Completed)
	assert.Equal(t, 1.0, status.SuccessRate)
}

func TestEndToEnd_ValidationRejectsBeforeEnqueue(t *testing.T) {
	app := newTestApp(t)
	defer app.queue.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check_urls",
		strings.NewReader(`{"urls": ["ftp://example.com"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndToEnd_UnknownBatch(t *testing.T) {
	app := newTestApp(t)
	defer app.queue.Stop()

	code, _ := app.status(t, "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, code)
}
