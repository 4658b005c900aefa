package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/asquebay/order-queries/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed data/seed.yaml
var defaultSeed []byte

// document — структура YAML-файла с исходными данными
type document struct {
	Customers []model.Customer `yaml:"customers"`
	Products  []model.Product  `yaml:"products"`
	Orders    []orderRow       `yaml:"orders"`
}

type orderRow struct {
	ID           int64   `yaml:"id"`
	OrderDate    string  `yaml:"order_date"`
	DeliveryDate string  `yaml:"delivery_date"`
	Status       string  `yaml:"status"`
	CustomerID   int64   `yaml:"customer_id"`
	ProductIDs   []int64 `yaml:"product_ids"`
}

// Loader отдаёт данные из YAML-документа
// документ разбирается один раз в конструкторе
type Loader struct {
	customers []model.Customer
	products  []model.Product
	orders    []model.OrderRecord
}

// New читает seed из файла, пустой путь — встроенный набор данных
func New(path string) (*Loader, error) {
	const op = "repository.seed.New"

	raw := defaultSeed
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read seed file: %w", op, err)
		}
	}

	l, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return l, nil
}

// Parse разбирает YAML-документ с покупателями, товарами и заказами
func Parse(raw []byte) (*Loader, error) {
	const op = "repository.seed.Parse"

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal seed: %w", op, err)
	}

	orders := make([]model.OrderRecord, 0, len(doc.Orders))
	for _, row := range doc.Orders {
		orderDate, err := model.ParseDate(row.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("%s: order %d: bad order_date: %w", op, row.ID, err)
		}
		deliveryDate, err := model.ParseDate(row.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("%s: order %d: bad delivery_date: %w", op, row.ID, err)
		}
		orders = append(orders, model.OrderRecord{
			ID:           row.ID,
			OrderDate:    orderDate,
			DeliveryDate: deliveryDate,
			Status:       row.Status,
			CustomerID:   row.CustomerID,
			ProductIDs:   row.ProductIDs,
		})
	}

	return &Loader{
		customers: doc.Customers,
		products:  doc.Products,
		orders:    orders,
	}, nil
}

func (l *Loader) LoadCustomers(_ context.Context) ([]model.Customer, error) {
	return l.customers, nil
}

func (l *Loader) LoadProducts(_ context.Context) ([]model.Product, error) {
	return l.products, nil
}

func (l *Loader) LoadOrders(_ context.Context) ([]model.OrderRecord, error) {
	return l.orders, nil
}
