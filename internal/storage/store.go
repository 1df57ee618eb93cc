package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"urlhealth/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Storer defines the persistence operations on URL check records.
//
// Records are created in a pending shape and mutated in place by the single
// worker responsible for their id; every update overwrites the same result
// fields so that retried attempts stay idempotent.
type Storer interface {
	// CreateCheck inserts a pending record and fills in its assigned id
	// and checked_at timestamp.
	CreateCheck(ctx context.Context, check *domain.URLCheck) error

	// GetCheckByID returns the record or ErrNotFound.
	GetCheckByID(ctx context.Context, id int64) (*domain.URLCheck, error)

	// UpdateCheckResult overwrites the result fields of the record.
	UpdateCheckResult(ctx context.Context, id int64, outcome domain.CheckOutcome) error

	// SetCheckError records a failure message without touching the other
	// result fields, used for enqueue failures.
	SetCheckError(ctx context.Context, id int64, message string) error

	// ListChecksByBatch returns all records of a batch, newest first.
	ListChecksByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.URLCheck, error)

	// BatchStats aggregates a batch. A batch with no records yields
	// Total == 0; callers decide whether that means "not found".
	BatchStats(ctx context.Context, batchID uuid.UUID) (*domain.BatchStatus, error)
}
