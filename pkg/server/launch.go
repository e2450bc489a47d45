package server

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/jobboard/jobfilter/pkg/config"
	"github.com/jobboard/jobfilter/pkg/service"
	"github.com/jobboard/jobfilter/pkg/store/sql"
)

// Launch serves the job API until ctx is cancelled.
func Launch(ctx context.Context, logger *logrus.Logger, cfg *config.Config) error {
	store, err := sql.NewSQLStore(logger, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("Failed to close job store: %v", err)
		}
	}()

	if cfg.Seed {
		if err := store.Seed(ctx); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	jobService, err := service.NewJobService(logger, cfg, store, registry)
	if err != nil {
		return err
	}

	app, err := NewApp(logger, cfg, jobService, registry)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()

		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout.Duration); err != nil {
			logger.Errorf("Failed to gracefully shutdown job filter server: %v", err)
		}
	}()

	logger.Infof("Job filter server listening on %s", cfg.Address)

	if err := app.Listen(cfg.Address); err != nil {
		return fmt.Errorf("failed to start job filter server: %w", err)
	}

	return nil
}
