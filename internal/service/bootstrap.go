package service

import (
	"context"
	"fmt"
	"log/slog"
)

// LoadStore заполняет хранилище данными из источника при старте
func LoadStore(ctx context.Context, loader SeedLoader, store StoreLoader, log *slog.Logger) error {
	const op = "service.LoadStore"
	log = log.With(slog.String("op", op))

	log.Info("loading entity store")

	customers, err := loader.LoadCustomers(ctx)
	if err != nil {
		log.Error("failed to load customers", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	products, err := loader.LoadProducts(ctx)
	if err != nil {
		log.Error("failed to load products", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	orders, err := loader.LoadOrders(ctx)
	if err != nil {
		log.Error("failed to load orders", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := store.Load(customers, products, orders); err != nil {
		log.Error("seed data rejected by store", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("entity store loaded",
		slog.Int("customers_count", len(customers)),
		slog.Int("products_count", len(products)),
		slog.Int("orders_count", len(orders)),
	)
	return nil
}
