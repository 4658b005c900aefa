package service

import (
	"context"

	"github.com/asquebay/order-queries/internal/model"
)

// SeedLoader определяет контракт для источника исходных данных (YAML, PostgreSQL, SQLite)
type SeedLoader interface {
	LoadCustomers(ctx context.Context) ([]model.Customer, error)
	LoadProducts(ctx context.Context) ([]model.Product, error)
	LoadOrders(ctx context.Context) ([]model.OrderRecord, error)
}

// StoreLoader — хранилище, которое заполняется один раз при старте
type StoreLoader interface {
	Load(customers []model.Customer, products []model.Product, orders []model.OrderRecord) error
}

// EntityStore определяет контракт для чтения in-memory хранилища
// каждый вызов отдаёт всю коллекцию в порядке загрузки
type EntityStore interface {
	AllCustomers() []model.Customer
	AllProducts() []model.Product
	AllOrders() []model.Order
}
