package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"urlhealth/internal/domain"
	"urlhealth/internal/storage"
)

// PostgresStore implements storage.Storer on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// New creates a PostgresStore and runs migrations.
func New(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Pool exposes the underlying pool for collaborators that write their own
// tables, such as the metrics recorder.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS url_checks (
		id            BIGSERIAL PRIMARY KEY,
		url           TEXT NOT NULL,
		batch_id      UUID NOT NULL,
		status_code   INTEGER,
		response_time DOUBLE PRECISION,
		is_reachable  BOOLEAN NOT NULL DEFAULT FALSE,
		error_message TEXT NOT NULL DEFAULT '',
		checked_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_url_checks_batch_id ON url_checks (batch_id);
	CREATE INDEX IF NOT EXISTS idx_url_checks_checked_at ON url_checks (checked_at);

	CREATE TABLE IF NOT EXISTS http_metrics (
		time        TIMESTAMPTZ NOT NULL,
		method      TEXT NOT NULL,
		path        TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		duration_ms DOUBLE PRECISION NOT NULL,
		client_ip   TEXT NOT NULL,
		error       TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS business_metrics (
		time        TIMESTAMPTZ NOT NULL,
		metric_name TEXT NOT NULL,
		value       DOUBLE PRECISION NOT NULL,
		labels      JSONB
	);
	`
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *PostgresStore) CreateCheck(ctx context.Context, check *domain.URLCheck) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO url_checks (url, batch_id) VALUES ($1, $2) RETURNING id, checked_at`,
		check.URL, check.BatchID,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to create check: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetCheckByID(ctx context.Context, id int64) (*domain.URLCheck, error) {
	var check domain.URLCheck
	err := s.pool.QueryRow(ctx,
		`SELECT id, url, batch_id, status_code, response_time, is_reachable, error_message, checked_at
		 FROM url_checks WHERE id = $1`,
		id,
	).Scan(&check.ID, &check.URL, &check.BatchID, &check.StatusCode,
		&check.ResponseTime, &check.IsReachable, &check.ErrorMessage, &check.CheckedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get check: %w", err)
	}
	return &check, nil
}

func (s *PostgresStore) UpdateCheckResult(ctx context.Context, id int64, outcome domain.CheckOutcome) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE url_checks
		 SET status_code = $2, response_time = $3, is_reachable = $4, error_message = $5
		 WHERE id = $1`,
		id, outcome.StatusCode, outcome.ResponseTime, outcome.IsReachable, outcome.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to update check result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SetCheckError(ctx context.Context, id int64, message string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE url_checks SET is_reachable = FALSE, error_message = $2 WHERE id = $1`,
		id, message,
	)
	if err != nil {
		return fmt.Errorf("failed to set check error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListChecksByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.URLCheck, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, url, batch_id, status_code, response_time, is_reachable, error_message, checked_at
		 FROM url_checks WHERE batch_id = $1
		 ORDER BY checked_at DESC, id DESC`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var checks []domain.URLCheck
	for rows.Next() {
		var check domain.URLCheck
		if err := rows.Scan(&check.ID, &check.URL, &check.BatchID, &check.StatusCode,
			&check.ResponseTime, &check.IsReachable, &check.ErrorMessage, &check.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checks: %w", err)
	}
	return checks, nil
}

func (s *PostgresStore) BatchStats(ctx context.Context, batchID uuid.UUID) (*domain.BatchStatus, error) {
	var total, completed, reachable int
	err := s.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE status_code IS NOT NULL OR error_message <> ''),
		        count(*) FILTER (WHERE is_reachable)
		 FROM url_checks WHERE batch_id = $1`,
		batchID,
	).Scan(&total, &completed, &reachable)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate batch: %w", err)
	}

	stats := &domain.BatchStatus{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
	if total > 0 {
		stats.SuccessRate = float64(reachable) / float64(total)
	}
	return stats, nil
}
