package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/priyanshi-bakery/storefront/internal/config"
	"github.com/priyanshi-bakery/storefront/internal/queue"
	"github.com/priyanshi-bakery/storefront/internal/repository"
	"github.com/priyanshi-bakery/storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting order processing worker",
		"brokers", cfg.Kafka.Brokers,
		"topic", cfg.Kafka.Topic,
		"group_id", cfg.Kafka.GroupID,
	)

	repo, err := repository.NewPostgresRepository(cfg.Database)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	consumer := queue.NewConsumer(repo, log, cfg.Kafka.Topic, cfg.Kafka.GroupID, cfg.Kafka.Brokers...)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down worker...")
		cancel()
	}()

	consumer.Run(ctx)

	log.Info("worker stopped")
}
