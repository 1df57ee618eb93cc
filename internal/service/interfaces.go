package service

//go:generate mockery

import (
	"context"

	"github.com/google/uuid"

	"urlhealth/internal/domain"
	"urlhealth/internal/queue"
)

type Store interface {
	CreateCheck(ctx context.Context, check *domain.URLCheck) error
	SetCheckError(ctx context.Context, id int64, message string) error
	ListChecksByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.URLCheck, error)
	BatchStats(ctx context.Context, batchID uuid.UUID) (*domain.BatchStatus, error)
}

type Publisher interface {
	Publish(job queue.Job) error
}
