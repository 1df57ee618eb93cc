package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"urlhealth/internal/domain"
	"urlhealth/internal/storage"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds. checked_at is stored
// as TEXT and ordered with ORDER BY, so the format has to sort
// lexicographically; RFC3339Nano trims trailing zeros and does not.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements storage.Storer on a local SQLite file. It exists
// for development and tests; the production store is postgres.
type SQLiteStore struct {
	db *sql.DB
}

func New(ctx context.Context, dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dataSourceName))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS url_checks (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	url           TEXT NOT NULL,
	batch_id      TEXT NOT NULL,
	status_code   INTEGER,
	response_time REAL,
	is_reachable  INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT '',
	checked_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_url_checks_batch_id ON url_checks (batch_id);
CREATE INDEX IF NOT EXISTS idx_url_checks_checked_at ON url_checks (checked_at);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *SQLiteStore) CreateCheck(ctx context.Context, check *domain.URLCheck) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO url_checks (url, batch_id, checked_at) VALUES (?, ?, ?)`,
		check.URL, check.BatchID.String(), now.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create check: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	check.ID = id
	check.CheckedAt = now
	return nil
}

func (s *SQLiteStore) GetCheckByID(ctx context.Context, id int64) (*domain.URLCheck, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, batch_id, status_code, response_time, is_reachable, error_message, checked_at
		 FROM url_checks WHERE id = ?`, id)

	check, err := scanCheck(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get check: %w", err)
	}
	return check, nil
}

func (s *SQLiteStore) UpdateCheckResult(ctx context.Context, id int64, outcome domain.CheckOutcome) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE url_checks
		 SET status_code = ?, response_time = ?, is_reachable = ?, error_message = ?
		 WHERE id = ?`,
		nullableInt(outcome.StatusCode), nullableFloat(outcome.ResponseTime),
		outcome.IsReachable, outcome.ErrorMessage, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update check result: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) SetCheckError(ctx context.Context, id int64, message string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE url_checks SET is_reachable = 0, error_message = ? WHERE id = ?`,
		message, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set check error: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) ListChecksByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.URLCheck, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, batch_id, status_code, response_time, is_reachable, error_message, checked_at
		 FROM url_checks WHERE batch_id = ?
		 ORDER BY checked_at DESC, id DESC`,
		batchID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var checks []domain.URLCheck
	for rows.Next() {
		check, err := scanCheck(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, *check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checks: %w", err)
	}
	return checks, nil
}

func (s *SQLiteStore) BatchStats(ctx context.Context, batchID uuid.UUID) (*domain.BatchStatus, error) {
	var total, completed, reachable int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*),
		        count(CASE WHEN status_code IS NOT NULL OR error_message <> '' THEN 1 END),
		        count(CASE WHEN is_reachable THEN 1 END)
		 FROM url_checks WHERE batch_id = ?`,
		batchID.String(),
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

func scanCheck(scan func(dest ...any) error) (*domain.URLCheck, error) {
	var (
		check        domain.URLCheck
		batchID      string
		statusCode   sql.NullInt64
		responseTime sql.NullFloat64
		checkedAt    string
	)
	if err := scan(&check.ID, &check.URL, &batchID, &statusCode,
		&responseTime, &check.IsReachable, &check.ErrorMessage, &checkedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(batchID)
	if err != nil {
		return nil, fmt.Errorf("invalid batch id %q: %w", batchID, err)
	}
	check.BatchID = parsed

	if statusCode.Valid {
		code := int(statusCode.Int64)
		check.StatusCode = &code
	}
	if responseTime.Valid {
		rt := responseTime.Float64
		check.ResponseTime = &rt
	}

	t, err := time.Parse(timeLayout, checkedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid checked_at %q: %w", checkedAt, err)
	}
	check.CheckedAt = t

	return &check, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
