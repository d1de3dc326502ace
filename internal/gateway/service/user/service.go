package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"careersight/internal/gateway/entity"
	"careersight/internal/gateway/repository/userstore"
)

// Snapshot is what the identity provider reports about the caller at the
// start of a session.
type Snapshot struct {
	ID           string   `json:"id"`
	FullName     string   `json:"fullName"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	PrimaryEmail string   `json:"primaryEmail"`
	Emails       []string `json:"emails"`
	ImageURL     string   `json:"imageUrl"`
}

// SyncError wraps an identity upsert failure. Callers treat it as
// "continue unauthenticated", not as a hard failure.
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string { return fmt.Sprintf("user: sync: %v", e.Err) }
func (e *SyncError) Unwrap() error { return e.Err }

// Service performs the once-per-session identity upsert.
type Service struct {
	users *userstore.Store
	log   *log.Logger
}

func New(users *userstore.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{users: users, log: logger}
}

// Sync upserts the caller's identity record keyed by the provider id.
// Re-applying the same snapshot leaves the record unchanged.
func (s *Service) Sync(ctx context.Context, snap Snapshot) (userstore.Record, error) {
	id := entity.NormalizeExternalID(snap.ID)
	if id.IsZero() {
		return userstore.Record{}, &SyncError{Err: errors.New("missing external id")}
	}

	rec, err := s.users.Upsert(ctx, userstore.Record{
		ExternalID: id.String(),
		Name:       deriveName(snap),
		Email:      deriveEmail(snap),
		ImageURL:   optional(snap.ImageURL),
	})
	if err != nil {
		s.log.Printf("user: sync failed for %s: %v", id, err)
		return userstore.Record{}, &SyncError{Err: err}
	}
	return rec, nil
}

// deriveName prefers the provider's full name, then first+last joined and
// trimmed, then nothing.
func deriveName(snap Snapshot) *string {
	if full := strings.TrimSpace(snap.FullName); full != "" {
		return &full
	}
	joined := strings.TrimSpace(strings.TrimSpace(snap.FirstName) + " " + strings.TrimSpace(snap.LastName))
	if joined != "" {
		return &joined
	}
	return nil
}

// deriveEmail prefers the primary address, then the first listed one.
func deriveEmail(snap Snapshot) *string {
	if primary := strings.TrimSpace(snap.PrimaryEmail); primary != "" {
		return &primary
	}
	for _, e := range snap.Emails {
		if addr := strings.TrimSpace(e); addr != "" {
			return &addr
		}
	}
	return nil
}

func optional(s string) *string {
	if v := strings.TrimSpace(s); v != "" {
		return &v
	}
	return nil
}
