package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/jobboard/jobfilter/pkg/config"
	"github.com/jobboard/jobfilter/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	seed := flag.Bool("seed", false, "insert the demo catalog and job on startup")
	migrate := flag.Bool("migrate", false, "create or update the job tables on startup")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(err)
	}

	cfg.Seed = cfg.Seed || *seed
	cfg.MigrateSchema = cfg.MigrateSchema || *migrate

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("Invalid log level %q: %v", cfg.LogLevel, err)
	}

	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Launch(ctx, logger, cfg); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
