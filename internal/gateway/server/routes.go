package server

import (
	"net/http"

	"careersight/internal/gateway/handler"
	"careersight/internal/gateway/middleware"
)

func NewMux(
	insightsHandler *handler.InsightsHandler,
	authHandler *handler.AuthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/insights", insightsHandler.HandleGetInsights)
	mux.HandleFunc("/api/auth/sync", authHandler.HandleSync)
	mux.HandleFunc("/healthz", handler.HandleHealth)

	return middleware.CORS(mux)
}
