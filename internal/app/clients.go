package app

import (
	"context"
	"fmt"

	"github.com/yungbote/edusphere-backend/internal/data/db"
	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/firebase"
	"github.com/yungbote/edusphere-backend/internal/platform/gemini"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
	"github.com/yungbote/edusphere-backend/internal/platform/youtube"
)

type Clients struct {
	Gemini   gemini.Client
	YouTube  youtube.Client
	Firebase *firebase.Clients
	SQL      *db.Service
	Metrics  *observability.Metrics
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.New(log)
	}

	model, err := gemini.NewClient(ctx, log, gemini.Config{
		APIKey:          cfg.GoogleAPIKey,
		Model:           cfg.GeminiModel,
		CredentialsJSON: cfg.CredentialsJSON,
		Project:         cfg.GCPProject,
		Location:        cfg.GCPLocation,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init gemini client: %w", err)
	}

	captions := youtube.NewClient(log, youtube.Config{Timeout: cfg.YouTubeTimeout})

	out := Clients{Gemini: model, YouTube: captions, Metrics: metrics}

	switch cfg.StoreDriver {
	case StoreFirestore:
		fb, err := firebase.New(ctx, log, firebase.Config{
			CredentialsJSON: cfg.CredentialsJSON,
			ProjectID:       cfg.GCPProject,
		})
		if err != nil {
			return Clients{}, fmt.Errorf("init firebase: %w", err)
		}
		out.Firebase = fb
	case StorePostgres, StoreSQLite:
		sqlDB, err := db.Open(log, cfg.Database)
		if err != nil {
			return Clients{}, fmt.Errorf("init database: %w", err)
		}
		if err := sqlDB.AutoMigrateAll(); err != nil {
			_ = sqlDB.Close()
			return Clients{}, fmt.Errorf("database automigrate: %w", err)
		}
		out.SQL = sqlDB
	default:
		return Clients{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	return out, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Firebase != nil {
		_ = c.Firebase.Close()
	}
	if c.SQL != nil {
		_ = c.SQL.Close()
	}
}
