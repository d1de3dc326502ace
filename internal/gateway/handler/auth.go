package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careersight/internal/gateway/service/user"
)

// AuthHandler runs the once-per-session identity sync. A failed sync is
// answered with ok=false rather than an error status: the caller simply
// continues unauthenticated.
type AuthHandler struct {
	svc *user.Service
}

func NewAuthHandler(svc *user.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var snap user.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Sync(r.Context(), snap)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		var serr *user.SyncError
		if errors.As(err, &serr) {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "user": nil})
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "user": rec})
}
