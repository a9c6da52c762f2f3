package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats-backend/internal/bootstrap"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg, os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	if app.DB != nil {
		if err := db.RunMigrations(ctx, app.DB); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		telemetry.Info("server.listening", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	telemetry.Info("server.shutdown", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
