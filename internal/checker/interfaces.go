package checker

//go:generate mockery

import (
	"context"
	"time"

	"urlhealth/internal/domain"
	"urlhealth/internal/queue"
)

type Store interface {
	GetCheckByID(ctx context.Context, id int64) (*domain.URLCheck, error)
	UpdateCheckResult(ctx context.Context, id int64, outcome domain.CheckOutcome) error
}

type Cache interface {
	Get(url string) (domain.CheckOutcome, bool)
	Set(url string, outcome domain.CheckOutcome)
}

type Prober interface {
	Probe(ctx context.Context, url string) domain.Outcome
}

type Publisher interface {
	PublishAfter(job queue.Job, delay time.Duration)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
