package insightstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"careersight/internal/insight"
)

// Store maps a category to its most recent cached insight. It runs on
// Postgres when constructed with a database handle and on an in-process
// map otherwise (tests, local runs without a DATABASE_URL).
type Store struct {
	db *sql.DB

	mu    sync.RWMutex
	byCat map[string]CachedInsight

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, CachedInsight]

	now func() time.Time
}

// NewMemory builds the in-process backend.
func NewMemory() *Store {
	return &Store{
		byCat: make(map[string]CachedInsight),
		now:   time.Now,
	}
}

// NewPostgres builds the database backend with an LRU read cache in
// front of it.
func NewPostgres(db *sql.DB) (*Store, error) {
	cache, err := lru.New[string, CachedInsight](1024)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:    db,
		cache: cache,
		now:   time.Now,
	}, nil
}

// Get looks up the cached insight for a category.
func (s *Store) Get(ctx context.Context, category string) (CachedInsight, bool, error) {
	cat := strings.TrimSpace(category)
	if cat == "" {
		return CachedInsight{}, false, nil
	}
	if s.cache != nil {
		if rec, ok := s.cache.Get(cat); ok {
			return rec, true, nil
		}
	}
	if s.db != nil {
		rec, ok, err := s.getDB(ctx, cat)
		if err != nil {
			return CachedInsight{}, false, &StorageError{Op: "get", Err: err}
		}
		if ok && s.cache != nil {
			s.cache.Add(cat, rec)
		}
		return rec, ok, nil
	}
	return s.getMemory(cat)
}

// GetOrCreate returns the stored record for a category, invoking gen and
// persisting its result on a miss. A hit is returned unchanged without
// consulting NextUpdate: the freshness deadline is recorded for a future
// refresh job, not enforced here. Two racing first-requests may both run
// gen; the category's uniqueness constraint picks one winner and the
// loser re-reads it.
func (s *Store) GetOrCreate(ctx context.Context, category string, gen func(context.Context) insight.Report) (CachedInsight, error) {
	cat := strings.TrimSpace(category)
	if cat == "" {
		return CachedInsight{}, &StorageError{Op: "getOrCreate", Err: errors.New("empty category")}
	}

	rec, ok, err := s.Get(ctx, cat)
	if err != nil {
		return CachedInsight{}, err
	}
	if ok {
		return rec, nil
	}

	rep := gen(ctx)
	rep.Category = cat
	now := s.now().UTC()
	fresh := CachedInsight{
		Category:   cat,
		Report:     rep,
		NextUpdate: now.Add(RetentionWindow),
		CreatedAt:  now,
	}

	stored, err := s.insert(ctx, fresh)
	if err != nil {
		return CachedInsight{}, err
	}
	if s.cache != nil {
		s.cache.Add(cat, stored)
	}
	return stored, nil
}

// insert persists a new record, returning the winning record when a
// concurrent writer got there first.
func (s *Store) insert(ctx context.Context, rec CachedInsight) (CachedInsight, error) {
	if s.db != nil {
		return s.insertDB(ctx, rec)
	}
	return s.insertMemory(rec), nil
}
