package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"careersight/internal/gateway/entity"
	"careersight/internal/gateway/service/insights"
)

// InsightsHandler serves the "get insights for current caller" operation.
// Identity resolution happens upstream; the resolved external id arrives
// in the X-External-Id header.
type InsightsHandler struct {
	svc *insights.Service
	log *log.Logger
}

func NewInsightsHandler(svc *insights.Service, logger *log.Logger) *InsightsHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &InsightsHandler{svc: svc, log: logger}
}

func (h *InsightsHandler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := entity.NormalizeExternalID(r.Header.Get("X-External-Id"))

	rec, err := h.svc.GetForUser(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, insights.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	case errors.Is(err, insights.ErrUserNotFound), errors.Is(err, insights.ErrNoCategory):
		http.Error(w, "not found", http.StatusNotFound)
		return
	default:
		h.log.Printf("insights handler: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}
