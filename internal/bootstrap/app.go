// Package bootstrap assembles repositories, services, and handlers from
// configuration. Dev environments without a DATABASE_URL run fully
// in-memory; production requires Postgres.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/applications"
	"ats-backend/internal/auth"
	"ats-backend/internal/candidates"
	"ats-backend/internal/jobs"
	"ats-backend/internal/llm"
	"ats-backend/internal/llm/openai"
	"ats-backend/internal/match"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/storage/object/local"
	objects3 "ats-backend/internal/shared/storage/object/s3"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/users"
)

// App holds the wired application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
}

// Close releases held resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Build wires the full application from config.
func Build(ctx context.Context, cfg config.Config, apiKey string) (*App, error) {
	database, err := connectDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		closeQuietly(database)
		return nil, err
	}

	client, err := buildLLMClient(cfg, apiKey)
	if err != nil {
		closeQuietly(database)
		return nil, err
	}

	var (
		candidateRepo   candidates.Repo
		jobRepo         jobs.Repo
		applicationRepo applications.Repo
		userRepo        users.Repo
	)
	if database != nil {
		candidateRepo = &candidates.PGRepo{DB: database}
		jobRepo = &jobs.PGRepo{DB: database}
		applicationRepo = &applications.PGRepo{DB: database}
		userRepo = &users.PGRepo{DB: database}
	} else {
		candidateRepo = candidates.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		applicationRepo = applications.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	candidateSvc := candidates.NewService(candidateRepo, store, client, cfg.MatchTimeout)
	jobSvc := jobs.NewService(jobRepo)
	applicationSvc := applications.NewService(applicationRepo, candidateRepo, jobRepo)
	matchSvc := match.NewService(candidateRepo, jobRepo, client, cfg.MatchTimeout)
	userSvc := users.NewService(userRepo)
	googleSvc := auth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		userSvc,
	)

	router := server.NewRouter(cfg,
		candidates.NewHandler(candidateSvc),
		jobs.NewHandler(jobSvc),
		applications.NewHandler(applicationSvc),
		match.NewHandler(matchSvc),
		googleSvc,
	)

	return &App{Router: router, DB: database}, nil
}

func connectDatabase(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Warn("db.memory_fallback", map[string]any{"env": cfg.Env})
		return nil, nil
	}
	return db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		return objects3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	}
	return local.New(cfg.LocalStoreDir), nil
}

func buildLLMClient(cfg config.Config, apiKey string) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if apiKey == "" && cfg.Env != "production" {
			telemetry.Warn("llm.placeholder_fallback", map[string]any{"env": cfg.Env})
			return llm.PlaceholderClient{}, nil
		}
		client, err := openai.NewClient(apiKey, cfg.LLMModel, cfg.MatchTimeout)
		if err != nil {
			return nil, err
		}
		return llm.WithRetry(client), nil
	case "placeholder":
		telemetry.Warn("llm.placeholder", nil)
		return llm.PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func closeQuietly(database *sql.DB) {
	if database != nil {
		database.Close()
	}
}
