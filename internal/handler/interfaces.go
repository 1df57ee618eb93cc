package handler

//go:generate mockery

import (
	"context"

	"github.com/google/uuid"

	"urlhealth/internal/domain"
)

type BatchService interface {
	Submit(ctx context.Context, urls []string) (*domain.CheckURLsResponse, error)
	Status(ctx context.Context, batchID uuid.UUID) (*domain.BatchStatus, error)
	Results(ctx context.Context, batchID uuid.UUID) ([]domain.URLCheck, error)
}

type URLValidator interface {
	ValidateBatch(urls []string) error
}
