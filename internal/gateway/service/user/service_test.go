package user

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"careersight/internal/gateway/repository/userstore"
)

func newTestService() (*Service, *userstore.Store) {
	users := userstore.NewMemory()
	return New(users, log.New(io.Discard, "", 0)), users
}

func TestSyncIsIdempotent(t *testing.T) {
	svc, users := newTestService()
	snap := Snapshot{
		ID:           "ext-1",
		FullName:     "Ada Lovelace",
		PrimaryEmail: "ada@example.com",
		ImageURL:     "https://img.example.com/ada.png",
	}

	first, err := svc.Sync(context.Background(), snap)
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	second, err := svc.Sync(context.Background(), snap)
	if err != nil {
		t.Fatalf("Sync() second error = %v", err)
	}
	if *first.Name != *second.Name || *first.Email != *second.Email || *first.ImageURL != *second.ImageURL {
		t.Fatalf("re-applying the same snapshot changed the record:\n got %+v\nwas %+v", second, first)
	}

	got, ok, err := users.GetByExternalID(context.Background(), "ext-1")
	if err != nil || !ok {
		t.Fatalf("stored record missing: %v %v", ok, err)
	}
	if *got.Name != "Ada Lovelace" || *got.Email != "ada@example.com" {
		t.Fatalf("stored record = %+v", got)
	}
}

func TestSyncUpdatesLatestValues(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Sync(ctx, Snapshot{ID: "ext-2", FullName: "Old Name"}); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	rec, err := svc.Sync(ctx, Snapshot{ID: "ext-2", FullName: "New Name", PrimaryEmail: "new@example.com"})
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if *rec.Name != "New Name" || *rec.Email != "new@example.com" {
		t.Fatalf("record not updated: %+v", rec)
	}
}

func TestSyncMissingID(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Sync(context.Background(), Snapshot{FullName: "Nobody"})
	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("Sync() error = %v, want *SyncError", err)
	}
}

func TestDeriveName(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want string // "" means nil
	}{
		{"full name wins", Snapshot{FullName: "Ada Lovelace", FirstName: "A", LastName: "L"}, "Ada Lovelace"},
		{"first and last joined", Snapshot{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Snapshot{FirstName: "Ada"}, "Ada"},
		{"last only", Snapshot{LastName: "Lovelace"}, "Lovelace"},
		{"whitespace only", Snapshot{FullName: "  ", FirstName: " ", LastName: " "}, ""},
		{"nothing", Snapshot{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := deriveName(tc.snap)
			if tc.want == "" {
				if got != nil {
					t.Fatalf("deriveName() = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tc.want {
				t.Fatalf("deriveName() = %v, want %q", got, tc.want)
			}
		})
	}
}

func TestDeriveEmail(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want string
	}{
		{"primary wins", Snapshot{PrimaryEmail: "p@example.com", Emails: []string{"a@example.com"}}, "p@example.com"},
		{"first listed", Snapshot{Emails: []string{"a@example.com", "b@example.com"}}, "a@example.com"},
		{"skips blank entries", Snapshot{Emails: []string{"  ", "b@example.com"}}, "b@example.com"},
		{"none", Snapshot{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := deriveEmail(tc.snap)
			if tc.want == "" {
				if got != nil {
					t.Fatalf("deriveEmail() = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tc.want {
				t.Fatalf("deriveEmail() = %v, want %q", got, tc.want)
			}
		})
	}
}
