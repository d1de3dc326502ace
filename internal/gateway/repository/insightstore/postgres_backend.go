package insightstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

func (s *Store) ensureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS industry_insights (
  category TEXT PRIMARY KEY,
  report JSONB NOT NULL,
  next_update TIMESTAMPTZ NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	})
	return s.schemaErr
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInsight(row rowScanner) (CachedInsight, error) {
	var rec CachedInsight
	var reportRaw []byte
	if err := row.Scan(&rec.Category, &reportRaw, &rec.NextUpdate, &rec.CreatedAt); err != nil {
		return CachedInsight{}, err
	}
	if err := json.Unmarshal(reportRaw, &rec.Report); err != nil {
		return CachedInsight{}, fmt.Errorf("decode stored report: %w", err)
	}
	return rec, nil
}

func (s *Store) getDB(ctx context.Context, category string) (CachedInsight, bool, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return CachedInsight{}, false, err
	}
	row := s.db.QueryRowContext(ctx, `
SELECT category, report, next_update, created_at
FROM industry_insights WHERE category = $1`, category)
	rec, err := scanInsight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CachedInsight{}, false, nil
	}
	if err != nil {
		return CachedInsight{}, false, err
	}
	return rec, true, nil
}

func (s *Store) insertDB(ctx context.Context, rec CachedInsight) (CachedInsight, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return CachedInsight{}, &StorageError{Op: "insert", Err: err}
	}
	reportRaw, err := json.Marshal(rec.Report)
	if err != nil {
		return CachedInsight{}, &StorageError{Op: "insert", Err: err}
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO industry_insights (category, report, next_update, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (category) DO NOTHING`,
		rec.Category, reportRaw, rec.NextUpdate, rec.CreatedAt)
	if err != nil {
		return CachedInsight{}, &StorageError{Op: "insert", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 1 {
		return rec, nil
	}

	// Lost the first-write race: the winning record is already there.
	winner, ok, err := s.getDB(ctx, rec.Category)
	if err != nil {
		return CachedInsight{}, &StorageError{Op: "insert", Err: err}
	}
	if !ok {
		return CachedInsight{}, &StorageError{Op: "insert", Err: fmt.Errorf("conflict without a readable winner for %q", rec.Category)}
	}
	return winner, nil
}
