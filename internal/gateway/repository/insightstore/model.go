package insightstore

import (
	"fmt"
	"time"

	"careersight/internal/insight"
)

// RetentionWindow is how far in the future a new record's freshness
// deadline is set. The deadline is recorded but not consulted on reads;
// see Store.GetOrCreate.
const RetentionWindow = 7 * 24 * time.Hour

// CachedInsight is the persisted wrapper around a report. Callers receive
// a snapshot; the store owns the stored copy.
type CachedInsight struct {
	Category   string         `json:"category"`
	Report     insight.Report `json:"report"`
	NextUpdate time.Time      `json:"nextUpdate"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// StorageError wraps any store failure that is not the expected
// first-write race: unreachable database, broken rows, conflicts without
// a readable winner.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("insightstore: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
