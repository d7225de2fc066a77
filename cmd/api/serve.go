package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"petclinic-customers/internal/adapters/storage/postgres"
	visitsclient "petclinic-customers/internal/adapters/visits"
	"petclinic-customers/internal/config"
	"petclinic-customers/internal/platform/logger"
	"petclinic-customers/internal/platform/metrics"
	"petclinic-customers/internal/router"
)

func runServe(ctx context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	defer syncLogger(log)

	opts := router.Options{
		Logger:           log,
		SeedData:         cfg.SeedData,
		MetricsNamespace: cfg.MetricsNamespace,
	}

	if cfg.UsesPostgres() {
		db, err := postgres.Open(ctx, postgres.Options{
			DSN:          cfg.DBDSN,
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		})
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		opts.DB = db
		log.Info("storage: postgres", nil)
	} else {
		log.Info("storage: in-memory", map[string]any{"seed": cfg.SeedData})
	}

	if cfg.VisitsServiceURL != "" {
		client, err := visitsclient.NewClient(visitsclient.Config{
			BaseURL: cfg.VisitsServiceURL,
			Timeout: cfg.VisitsTimeout,
		})
		if err != nil {
			return fmt.Errorf("visits client: %w", err)
		}
		opts.Visits = client
		log.Info("visits enrichment enabled", map[string]any{"url": cfg.VisitsServiceURL})
	}

	if cfg.MetricsEnabled {
		mp, err := metrics.NewProvider()
		if err != nil {
			return err
		}
		defer func() { _ = mp.Shutdown(context.Background()) }()
		opts.Metrics = mp
	}

	handler, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "version": version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

func syncLogger(log logger.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
