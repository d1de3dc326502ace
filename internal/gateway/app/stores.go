package app

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"careersight/internal/gateway/config"
	"careersight/internal/gateway/repository/insightstore"
	"careersight/internal/gateway/repository/userstore"
)

type gatewayStores struct {
	insights *insightstore.Store
	users    *userstore.Store
	db       *sql.DB
}

func initStores(cfg *config.Config) (*gatewayStores, error) {
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initPostgresStores(dsn)
	}
	log.Printf("stores: no DATABASE_URL, using in-memory backends")
	return &gatewayStores{
		insights: insightstore.NewMemory(),
		users:    userstore.NewMemory(),
	}, nil
}

func initPostgresStores(dsn string) (*gatewayStores, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach db: %w", err)
	}

	insights, err := insightstore.NewPostgres(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize insight store: %w", err)
	}
	log.Printf("stores: postgres backends ready")
	return &gatewayStores{
		insights: insights,
		users:    userstore.NewPostgres(db),
		db:       db,
	}, nil
}

func (s *gatewayStores) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
