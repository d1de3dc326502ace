package insightstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"careersight/internal/insight"
)

func fixedNow(t *testing.T, s *Store) time.Time {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return now
}

func TestGetOrCreateMissThenHit(t *testing.T) {
	s := NewMemory()
	now := fixedNow(t, s)

	calls := 0
	gen := func(context.Context) insight.Report {
		calls++
		return insight.Fallback()
	}

	first, err := s.GetOrCreate(context.Background(), "Technology", gen)
	require.NoError(t, err)
	require.Equal(t, "Technology", first.Category)
	require.Equal(t, "Technology", first.Report.Category)
	require.Equal(t, now.Add(RetentionWindow), first.NextUpdate)
	require.Equal(t, 1, calls)

	second, err := s.GetOrCreate(context.Background(), "Technology", gen)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, calls, "hit must not invoke the generator")
}

func TestGetOrCreateDoesNotEnforceDeadline(t *testing.T) {
	s := NewMemory()
	fixedNow(t, s)

	gen := func(context.Context) insight.Report { return insight.Fallback() }
	first, err := s.GetOrCreate(context.Background(), "Finance", gen)
	require.NoError(t, err)

	// Jump far past the recorded deadline; the hit is still served as-is.
	s.now = func() time.Time { return first.NextUpdate.Add(365 * 24 * time.Hour) }
	stale, err := s.GetOrCreate(context.Background(), "Finance", func(context.Context) insight.Report {
		t.Fatalf("generator must not run on a hit, stale or not")
		return insight.Report{}
	})
	require.NoError(t, err)
	require.Equal(t, first, stale)
}

func TestGetOrCreateEmptyCategory(t *testing.T) {
	s := NewMemory()
	_, err := s.GetOrCreate(context.Background(), "  ", func(context.Context) insight.Report {
		return insight.Fallback()
	})
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
}

func TestGetMiss(t *testing.T) {
	s := NewMemory()
	_, ok, err := s.Get(context.Background(), "Nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetOrCreateConcurrentFirstRequests(t *testing.T) {
	s := NewMemory()
	fixedNow(t, s)

	var mu sync.Mutex
	calls := 0
	gen := func(context.Context) insight.Report {
		mu.Lock()
		calls++
		mu.Unlock()
		return insight.Fallback()
	}

	const writers = 8
	results := make([]CachedInsight, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.GetOrCreate(context.Background(), "Healthcare", gen)
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i])
	}

	// All racers converge on one stored record; the generator may have
	// run more than once, but never produced duplicate rows.
	for i := 1; i < writers; i++ {
		require.Equal(t, results[0], results[i])
	}
	require.GreaterOrEqual(t, calls, 1)

	s.mu.RLock()
	require.Len(t, s.byCat, 1)
	s.mu.RUnlock()
}
