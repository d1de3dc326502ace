package insights

import (
	"context"
	"errors"
	"log"

	"careersight/internal/gateway/entity"
	"careersight/internal/gateway/repository/insightstore"
	"careersight/internal/gateway/repository/userstore"
	"careersight/internal/insight"
	"careersight/internal/llmclient"
)

var (
	// ErrUnauthorized means no caller identity was resolvable.
	ErrUnauthorized = errors.New("insights: unauthorized")
	// ErrUserNotFound means the caller has never been synced.
	ErrUserNotFound = errors.New("insights: user not found")
	// ErrNoCategory means the caller exists but has no industry assigned.
	ErrNoCategory = errors.New("insights: user has no category")
)

// Service orchestrates the insight pipeline: resolve the caller's
// category, then serve the cached report or synthesize a new one.
type Service struct {
	store *insightstore.Store
	users *userstore.Store
	llm   llmclient.TextGenerator
	log   *log.Logger
}

func New(store *insightstore.Store, users *userstore.Store, gen llmclient.TextGenerator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, users: users, llm: gen, log: logger}
}

// GetForUser returns the cached insight for the caller's category,
// generating and persisting one on first request. Generation and parsing
// problems never surface here; only an unusable store does, as a
// *insightstore.StorageError.
func (s *Service) GetForUser(ctx context.Context, id entity.ExternalID) (insightstore.CachedInsight, error) {
	if id.IsZero() {
		return insightstore.CachedInsight{}, ErrUnauthorized
	}
	rec, ok, err := s.users.GetByExternalID(ctx, id.String())
	if err != nil {
		return insightstore.CachedInsight{}, &insightstore.StorageError{Op: "user lookup", Err: err}
	}
	if !ok {
		return insightstore.CachedInsight{}, ErrUserNotFound
	}
	if rec.Category == "" {
		return insightstore.CachedInsight{}, ErrNoCategory
	}
	return s.store.GetOrCreate(ctx, rec.Category, func(ctx context.Context) insight.Report {
		rep, _ := s.Generate(ctx, rec.Category)
		return rep
	})
}

// Generate runs one model call and extraction for a category. Any failure
// along the way is logged and substituted with the fallback report; the
// returned bool tells whether live generation succeeded.
func (s *Service) Generate(ctx context.Context, category string) (insight.Report, bool) {
	raw, err := s.llm.GenerateText(ctx, insight.BuildPrompt(category))
	if err != nil {
		s.log.Printf("insights: generation failed for %q: %v", category, err)
		return s.fallbackFor(category), false
	}
	rep, err := insight.Extract(raw)
	if err != nil {
		s.log.Printf("insights: extraction failed for %q: %v", category, err)
		return s.fallbackFor(category), false
	}
	rep.Category = category
	return rep, true
}

func (s *Service) fallbackFor(category string) insight.Report {
	rep := insight.Fallback()
	rep.Category = category
	return rep
}
