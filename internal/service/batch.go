package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"urlhealth/internal/domain"
	"urlhealth/internal/queue"
)

var ErrBatchNotFound = errors.New("batch not found")

// BatchService accepts batches of URLs for asynchronous checking and serves
// aggregate status and per-URL results by batch id.
type BatchService struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	chunkSize int
}

func NewBatchService(store Store, publisher Publisher, logger *slog.Logger, chunkSize int) *BatchService {
	return &BatchService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		// A non-positive chunk size would stall the dispatch loop.
		chunkSize: max(1, chunkSize),
	}
}

// Submit creates one pending record per URL under a fresh batch id and
// enqueues one check job per record, in chunks to bound the instantaneous
// fan-out. It returns as soon as everything is enqueued; no check result is
// awaited. An enqueue failure is written onto the record so it surfaces as
// failed instead of pending forever.
func (s *BatchService) Submit(ctx context.Context, urls []string) (*domain.CheckURLsResponse, error) {
	batchID := uuid.New()
	records := make([]domain.URLCheck, 0, len(urls))

	for start := 0; start < len(urls); start += s.chunkSize {
		end := min(start+s.chunkSize, len(urls))

		for _, u := range urls[start:end] {
			check := domain.URLCheck{URL: u, BatchID: batchID}
			if err := s.store.CreateCheck(ctx, &check); err != nil {
				return nil, fmt.Errorf("failed to create check for %q: %w", u, err)
			}

			if err := s.publisher.Publish(queue.Job{RecordID: check.ID}); err != nil {
				s.logger.Error("failed to enqueue check",
					slog.Int64("record_id", check.ID),
					slog.String("url", u),
					slog.String("error", err.Error()))

				msg := fmt.Sprintf("Failed to queue task: %s", err)
				check.ErrorMessage = msg
				if err := s.store.SetCheckError(ctx, check.ID, msg); err != nil {
					return nil, fmt.Errorf("failed to record enqueue failure for check %d: %w", check.ID, err)
				}
			}

			records = append(records, check)
		}
	}

	s.logger.Info("batch submitted",
		slog.String("batch_id", batchID.String()),
		slog.Int("urls", len(records)))

	return &domain.CheckURLsResponse{
		BatchID: batchID,
		Message: fmt.Sprintf("Processing %d URLs", len(records)),
		URLs:    records,
	}, nil
}

// Status aggregates a batch. A batch id with no records is ErrBatchNotFound,
// never a zero-filled status.
func (s *BatchService) Status(ctx context.Context, batchID uuid.UUID) (*domain.BatchStatus, error) {
	stats, err := s.store.BatchStats(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get batch stats: %w", err)
	}
	if stats.Total == 0 {
		return nil, ErrBatchNotFound
	}
	return stats, nil
}

// Results returns all records of a batch, newest first.
func (s *BatchService) Results(ctx context.Context, batchID uuid.UUID) ([]domain.URLCheck, error) {
	checks, err := s.store.ListChecksByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch results: %w", err)
	}
	if len(checks) == 0 {
		return nil, ErrBatchNotFound
	}
	return checks, nil
}
