package userstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
)

// Record is a synced account row keyed by the auth provider's user id.
// Category is the industry label assigned during onboarding; Upsert
// leaves it untouched.
type Record struct {
	ExternalID string  `json:"externalId"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	ImageURL   *string `json:"imageUrl"`
	Category   string  `json:"category"`
}

// Store persists user identity records. Like the insight store it runs
// on Postgres when given a database handle and on an in-process map
// otherwise.
type Store struct {
	db *sql.DB

	mu   sync.RWMutex
	byID map[string]Record

	schemaOnce sync.Once
	schemaErr  error
}

func NewMemory() *Store {
	return &Store{byID: make(map[string]Record)}
}

func NewPostgres(db *sql.DB) *Store {
	return &Store{db: db}
}

// Upsert creates the record on first sight of an external id and
// overwrites name/email/image on every later call. Re-applying the same
// input leaves the record unchanged.
func (s *Store) Upsert(ctx context.Context, rec Record) (Record, error) {
	id := strings.TrimSpace(rec.ExternalID)
	if id == "" {
		return Record{}, errors.New("userstore: empty external id")
	}
	rec.ExternalID = id
	if s.db != nil {
		return s.upsertDB(ctx, rec)
	}
	return s.upsertMemory(rec), nil
}

// GetByExternalID looks up a synced record.
func (s *Store) GetByExternalID(ctx context.Context, externalID string) (Record, bool, error) {
	id := strings.TrimSpace(externalID)
	if id == "" {
		return Record{}, false, nil
	}
	if s.db != nil {
		return s.getDB(ctx, id)
	}
	return s.getMemory(id)
}

// SetCategory assigns the industry label for a user. Onboarding owns this
// field; identity sync never writes it.
func (s *Store) SetCategory(ctx context.Context, externalID, category string) error {
	id := strings.TrimSpace(externalID)
	if id == "" {
		return errors.New("userstore: empty external id")
	}
	if s.db != nil {
		return s.setCategoryDB(ctx, id, strings.TrimSpace(category))
	}
	return s.setCategoryMemory(id, strings.TrimSpace(category))
}
