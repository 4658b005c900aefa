package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/asquebay/order-queries/internal/model"
	"github.com/asquebay/order-queries/internal/repository/sqlquery"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedRepository читает исходные данные из PostgreSQL
type SeedRepository struct {
	db *pgxpool.Pool
	qb sqlquery.Builder
}

// NewSeedRepository создает новый экземпляр репозитория
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{
		db: db,
		qb: sqlquery.Postgres(),
	}
}

// LoadCustomers извлекает всех покупателей
func (r *SeedRepository) LoadCustomers(ctx context.Context) ([]model.Customer, error) {
	const op = "repository.postgres.seed.LoadCustomers"

	rows, err := r.query(ctx, r.qb.Customers().ToSql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Customer, error) {
		var c model.Customer
		err := row.Scan(&c.ID, &c.Name, &c.Tier)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to scan customer row: %w", op, err)
	}

	return customers, nil
}

// LoadProducts извлекает все товары
func (r *SeedRepository) LoadProducts(ctx context.Context) ([]model.Product, error) {
	const op = "repository.postgres.seed.LoadProducts"

	rows, err := r.query(ctx, r.qb.Products().ToSql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		var p model.Product
		err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to scan product row: %w", op, err)
	}

	return products, nil
}

// LoadOrders извлекает заказы вместе с идентификаторами товаров
// сначала сами заказы, затем все связи заказ-товар одним запросом
func (r *SeedRepository) LoadOrders(ctx context.Context) ([]model.OrderRecord, error) {
	const op = "repository.postgres.seed.LoadOrders"

	// 1. Получаем основные данные заказов
	rows, err := r.query(ctx, r.qb.Orders().ToSql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.OrderRecord, error) {
		var (
			o            model.OrderRecord
			deliveryDate *time.Time
			status       *string
		)
		if err := row.Scan(&o.ID, &o.OrderDate, &deliveryDate, &status, &o.CustomerID); err != nil {
			return o, err
		}
		if deliveryDate != nil {
			o.DeliveryDate = *deliveryDate
		}
		if status != nil {
			o.Status = *status
		}
		return o, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to scan order row: %w", op, err)
	}

	if len(orders) == 0 {
		return []model.OrderRecord{}, nil // нет заказов — возвращаем пустой слайс
	}

	// 2. Получаем товары для всех заказов
	linkRows, err := r.query(ctx, r.qb.OrderProducts().ToSql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer linkRows.Close()

	productIDs := make(map[int64][]int64, len(orders))
	for linkRows.Next() {
		var orderID, productID int64
		if err := linkRows.Scan(&orderID, &productID); err != nil {
			return nil, fmt.Errorf("%s: failed to scan order product row: %w", op, err)
		}
		productIDs[orderID] = append(productIDs[orderID], productID)
	}
	if err := linkRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: failed to read order products: %w", op, err)
	}

	// 3. Раскладываем товары по заказам, сохраняя порядок заказов из запроса
	for i := range orders {
		orders[i].ProductIDs = productIDs[orders[i].ID]
	}

	return orders, nil
}

func (r *SeedRepository) query(ctx context.Context, build func() (string, []interface{}, error)) (pgx.Rows, error) {
	sql, args, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	return rows, nil
}
