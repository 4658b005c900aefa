package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/asquebay/order-queries/internal/config"
	"github.com/asquebay/order-queries/internal/lib/logger"
	"github.com/asquebay/order-queries/internal/report"
	"github.com/asquebay/order-queries/internal/repository/memory"
	"github.com/asquebay/order-queries/internal/repository/postgres"
	"github.com/asquebay/order-queries/internal/repository/seed"
	"github.com/asquebay/order-queries/internal/repository/sqlite"
	"github.com/asquebay/order-queries/internal/service"
	"github.com/asquebay/order-queries/internal/transport/kafka"
)

func main() {
	// 1. Инициализация конфигурации
	cfg := config.MustLoad(config.Path())

	// 2. Инициализация логгера
	log := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	log.Info("starting order-queries",
		slog.String("log_level", cfg.Logger.Level),
		slog.String("seed_source", cfg.Seed.Source),
		slog.String("report_sink", cfg.Report.Sink),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	// 3. Источник исходных данных
	loader, closeLoader, err := newSeedLoader(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLoader()

	// 4. Заполнение хранилища, дальше оно только читается
	store := memory.NewStore()
	if err := service.LoadStore(ctx, loader, store, log); err != nil {
		return err
	}

	// 5. Куда печатаем результаты
	sink, closeSink := newSink(cfg, log)
	defer closeSink()

	// 6. Выполнение упражнений
	runner := service.NewExerciseRunner(service.NewCatalogue(store), report.New(sink), log)
	return runner.Run(ctx)
}

func newSeedLoader(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.SeedLoader, func(), error) {
	switch cfg.Seed.Source {
	case "postgres":
		dbpool, err := postgres.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Info("successfully connected to postgres")
		return postgres.NewSeedRepository(dbpool), dbpool.Close, nil

	case "sqlite":
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		log.Info("successfully opened sqlite", slog.String("path", cfg.SQLite.Path))
		return sqlite.NewSeedRepository(db), func() {
			if err := db.Close(); err != nil {
				log.Error("error closing sqlite", slog.String("error", err.Error()))
			}
		}, nil

	default:
		loader, err := seed.New(cfg.Seed.Path)
		if err != nil {
			return nil, nil, err
		}
		return loader, func() {}, nil
	}
}

func newSink(cfg *config.Config, log *slog.Logger) (report.Sink, func()) {
	switch cfg.Report.Sink {
	case "kafka":
		runID := strconv.FormatInt(time.Now().UnixNano(), 10)
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, runID, log)
		log.Info("publishing report to kafka", slog.String("topic", cfg.Kafka.Topic), slog.String("run_id", runID))
		return producer, func() {
			if err := producer.Close(); err != nil {
				log.Error("error closing kafka producer", slog.String("error", err.Error()))
			}
		}

	case "stdout":
		return report.NewWriterSink(os.Stdout), func() {}

	default:
		return report.NewLogSink(log), func() {}
	}
}
