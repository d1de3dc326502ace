package userstore

import (
	"context"
	"database/sql"
	"errors"
)

func (s *Store) ensureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS users (
  external_id TEXT PRIMARY KEY,
  name TEXT,
  email TEXT,
  image_url TEXT,
  category TEXT NOT NULL DEFAULT ''
);
`)
	})
	return s.schemaErr
}

func (s *Store) upsertDB(ctx context.Context, rec Record) (Record, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return Record{}, err
	}
	row := s.db.QueryRowContext(ctx, `
INSERT INTO users (external_id, name, email, image_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (external_id)
DO UPDATE SET name = EXCLUDED.name,
  email = EXCLUDED.email,
  image_url = EXCLUDED.image_url
RETURNING external_id, name, email, image_url, category`,
		rec.ExternalID, rec.Name, rec.Email, rec.ImageURL)
	return scanRecord(row)
}

func (s *Store) getDB(ctx context.Context, externalID string) (Record, bool, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return Record{}, false, err
	}
	row := s.db.QueryRowContext(ctx, `
SELECT external_id, name, email, image_url, category
FROM users WHERE external_id = $1`, externalID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func (s *Store) setCategoryDB(ctx context.Context, externalID, category string) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET category = $2 WHERE external_id = $1`,
		externalID, category)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New("userstore: no such user")
	}
	return nil
}

func scanRecord(row *sql.Row) (Record, error) {
	var rec Record
	err := row.Scan(&rec.ExternalID, &rec.Name, &rec.Email, &rec.ImageURL, &rec.Category)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}
