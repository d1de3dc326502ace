package app

import (
	"context"
	"fmt"
	"log"

	"careersight/internal/gateway/config"
	"careersight/internal/gateway/handler"
	"careersight/internal/gateway/server"
	"careersight/internal/gateway/service/insights"
	userservice "careersight/internal/gateway/service/user"
	llm "careersight/internal/llm/middleware"
	"careersight/internal/llmclient"
)

type App struct {
	server *server.Server
	stores *gatewayStores
	llm    llmclient.TextGenerator
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	gemini, err := llmclient.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model client: %w", err)
	}
	gen := llm.Chain(gemini,
		llm.WithLogging(nil),
		llm.WithTimeout(cfg.Gemini.Timeout),
	)

	stores, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	insightsSvc := insights.New(stores.insights, stores.users, gen, log.Default())
	userSvc := userservice.New(stores.users, log.Default())

	insightsHandler := handler.NewInsightsHandler(insightsSvc, log.Default())
	authHandler := handler.NewAuthHandler(userSvc)

	mux := server.NewMux(insightsHandler, authHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		stores: stores,
		llm:    gen,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.llm.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := a.stores.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
