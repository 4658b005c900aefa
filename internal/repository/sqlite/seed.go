package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/asquebay/order-queries/internal/model"
	"github.com/asquebay/order-queries/internal/repository/sqlquery"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Schema — таблицы исходных данных в SQLite
// даты хранятся текстом в формате model.DateLayout
const Schema = `
CREATE TABLE IF NOT EXISTS customer (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	tier INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS product (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	category TEXT NOT NULL,
	price    REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS product_order (
	id            INTEGER PRIMARY KEY,
	order_date    TEXT NOT NULL,
	delivery_date TEXT,
	status        TEXT,
	customer_id   INTEGER NOT NULL REFERENCES customer(id)
);
CREATE TABLE IF NOT EXISTS order_product_relationship (
	order_id   INTEGER NOT NULL REFERENCES product_order(id),
	product_id INTEGER NOT NULL REFERENCES product(id),
	position   INTEGER NOT NULL,
	PRIMARY KEY (order_id, position)
);
`

// Open открывает базу SQLite по пути и создаёт недостающие таблицы
// существующие таблицы и данные не трогаются
func Open(path string) (*sql.DB, error) {
	const op = "repository.sqlite.Open"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: open sqlite: %w", op, err)
	}
	// ":memory:" живёт в рамках одного соединения
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping sqlite: %w", op, err)
	}

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return db, nil
}

func applySchema(db *sql.DB) error {
	for _, stmt := range strings.Split(Schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// SeedRepository читает исходные данные из SQLite
type SeedRepository struct {
	db *sql.DB
	qb sqlquery.Builder
}

// NewSeedRepository создает новый экземпляр репозитория
func NewSeedRepository(db *sql.DB) *SeedRepository {
	return &SeedRepository{
		db: db,
		qb: sqlquery.SQLite(),
	}
}

func (r *SeedRepository) LoadCustomers(ctx context.Context) ([]model.Customer, error) {
	const op = "repository.sqlite.seed.LoadCustomers"

	rows, err := r.query(ctx, r.qb.Customers().ToSql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Tier); err != nil {
			return nil, fmt.Errorf("%s: failed to scan customer row: %w", op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return customers, nil
}

func (r *SeedRepository) LoadProducts(ctx context.Context) ([]model.Product, error) {
	const op = "repository.sqlite.seed.LoadProducts"

	rows, err := r.query(ctx, r.qb.Products().ToSql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("%s: failed to scan product row: %w", op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// LoadOrders извлекает заказы и раскладывает по ним идентификаторы товаров
func (r *SeedRepository) LoadOrders(ctx context.Context) ([]model.OrderRecord, error) {
	const op = "repository.sqlite.seed.LoadOrders"

	orders, err := r.loadOrderRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	productIDs, err := r.loadOrderProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range orders {
		orders[i].ProductIDs = productIDs[orders[i].ID]
	}
	return orders, nil
}

func (r *SeedRepository) loadOrderRows(ctx context.Context) ([]model.OrderRecord, error) {
	rows, err := r.query(ctx, r.qb.Orders().ToSql)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := []model.OrderRecord{}
	for rows.Next() {
		var (
			o            model.OrderRecord
			orderDate    string
			deliveryDate sql.NullString
			status       sql.NullString
		)
		if err := rows.Scan(&o.ID, &orderDate, &deliveryDate, &status, &o.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		if o.OrderDate, err = model.ParseDate(orderDate); err != nil {
			return nil, fmt.Errorf("order %d: bad order_date: %w", o.ID, err)
		}
		if o.DeliveryDate, err = model.ParseDate(deliveryDate.String); err != nil {
			return nil, fmt.Errorf("order %d: bad delivery_date: %w", o.ID, err)
		}
		o.Status = status.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *SeedRepository) loadOrderProducts(ctx context.Context) (map[int64][]int64, error) {
	rows, err := r.query(ctx, r.qb.OrderProducts().ToSql)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[int64][]int64)
	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return nil, fmt.Errorf("failed to scan order product row: %w", err)
		}
		out[orderID] = append(out[orderID], productID)
	}
	return out, rows.Err()
}

func (r *SeedRepository) query(ctx context.Context, build func() (string, []interface{}, error)) (*sql.Rows, error) {
	query, args, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	return rows, nil
}
