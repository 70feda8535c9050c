package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tdhoang/vocadict-backend/internal/adapter/postgres"
	entryrepo "github.com/tdhoang/vocadict-backend/internal/adapter/postgres/entry"
	"github.com/tdhoang/vocadict-backend/internal/adapter/provider/generative"
	"github.com/tdhoang/vocadict-backend/internal/adapter/provider/phonetics"
	"github.com/tdhoang/vocadict-backend/internal/config"
	"github.com/tdhoang/vocadict-backend/internal/service/importer"
	"github.com/tdhoang/vocadict-backend/internal/service/lookup"
	"github.com/tdhoang/vocadict-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// store, providers, services, and HTTP transport, and serves until the
// context is cancelled. Shutdown is graceful within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	entries := entryrepo.New(pool)
	audio := phonetics.NewProvider(cfg.Phonetics, logger)
	completion := generative.NewClient(cfg.Completion, logger)

	txm := postgres.NewTxManager(pool)

	lookupSvc := lookup.NewService(logger, entries, audio, completion, cfg.Dictionary.SearchLimit)
	importSvc := importer.NewService(logger, entries, txm)

	router := rest.NewRouter(cfg.CORS, logger, rest.Handlers{
		Word:      rest.NewWordHandler(lookupSvc, logger),
		Translate: rest.NewTranslateHandler(completion, logger),
		Import:    rest.NewImportHandler(importSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
