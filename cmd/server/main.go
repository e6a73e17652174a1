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

	"github.com/yourname/serenedesk/internal"
	api "github.com/yourname/serenedesk/internal/api"
	"github.com/yourname/serenedesk/internal/auth"
	"github.com/yourname/serenedesk/internal/config"
	"github.com/yourname/serenedesk/internal/sentiment"
	"github.com/yourname/serenedesk/internal/session"
	"github.com/yourname/serenedesk/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	exports, err := storage.NewExportRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init export storage: %v", err)
	}
	defer func() {
		if err := exports.Close(); err != nil {
			logger.Errorf("failed to close export storage: %v", err)
		}
	}()

	app := &api.Container{
		Log:      logger,
		Registry: session.NewRegistry(time.Now),
		Analyze:  sentiment.NewAnalyzer(cfg, logger),
		Archive:  exports,
	}
	router := api.NewRouter(app, auth.NewProvider(cfg, logger), cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server running on :%s (env=%s, analyzer=%s, exports=%s)", cfg.Port, cfg.Env, app.Analyze.Name(), cfg.ExportBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
