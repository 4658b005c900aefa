package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/asquebay/order-queries/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DSN собирает строку подключения из конфигурации
func DSN(cfg config.Postgres) string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)
}

// New создает и возвращает новый пул соединений с PostgreSQL
// данные читаются один раз при старте, поэтому пул маленький
func New(ctx context.Context, cfg config.Postgres) (*pgxpool.Pool, error) {
	const op = "repository.postgres.New"

	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse pgx config: %w", op, err)
	}

	poolConfig.MaxConns = 2
	poolConfig.MaxConnIdleTime = time.Minute

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create connection pool: %w", op, err)
	}

	// проверяем, что соединение установлено
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	return dbpool, nil
}
