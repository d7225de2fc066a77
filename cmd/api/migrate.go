package main

import (
	"context"
	"errors"

	"petclinic-customers/internal/adapters/storage/postgres"
	"petclinic-customers/internal/config"
)

func runMigrate(ctx context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if !cfg.UsesPostgres() {
		return errors.New("migrate: DB_DSN is required")
	}

	log := newLogger(cfg)
	defer syncLogger(log)

	// MigrateUp cierra el pool al terminar.
	db, err := postgres.Open(ctx, postgres.Options{DSN: cfg.DBDSN, MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return err
	}

	version, err := postgres.MigrateUp(db)
	if err != nil {
		return err
	}

	log.Info("migrations applied", map[string]any{"version": version})
	return nil
}
