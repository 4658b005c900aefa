package memory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/asquebay/order-queries/internal/model"
)

var (
	ErrNotLoaded       = errors.New("entity store is not loaded")
	ErrAlreadyLoaded   = errors.New("entity store is already loaded")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownCustomer = errors.New("unknown customer")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidEntity   = errors.New("invalid entity")
)

// Store — in-memory хранилище покупателей, товаров и заказов
// заполняется один раз при старте и дальше только читается,
// поэтому блокировки не нужны
type Store struct {
	loaded    bool
	customers []model.Customer
	products  []model.Product
	orders    []model.Order
}

// NewStore создаёт пустое хранилище
func NewStore() *Store {
	return &Store{}
}

// Load заполняет хранилище
// проверяет уникальность id и разрешает ссылки заказов на покупателей и товары
// при любой ошибке хранилище остаётся пустым
func (s *Store) Load(customers []model.Customer, products []model.Product, records []model.OrderRecord) error {
	const op = "repository.memory.Store.Load"

	if s.loaded {
		return fmt.Errorf("%s: %w", op, ErrAlreadyLoaded)
	}

	customerByID := make(map[int64]model.Customer, len(customers))
	for _, c := range customers {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%s: customer %d: %w: %w", op, c.ID, ErrInvalidEntity, err)
		}
		if _, ok := customerByID[c.ID]; ok {
			return fmt.Errorf("%s: customer %d: %w", op, c.ID, ErrDuplicateID)
		}
		customerByID[c.ID] = c
	}

	productByID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: product %d: %w: %w", op, p.ID, ErrInvalidEntity, err)
		}
		if _, ok := productByID[p.ID]; ok {
			return fmt.Errorf("%s: product %d: %w", op, p.ID, ErrDuplicateID)
		}
		productByID[p.ID] = p
	}

	orders := make([]model.Order, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s: order %d: %w: %w", op, r.ID, ErrInvalidEntity, err)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%s: order %d: %w", op, r.ID, ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}

		customer, ok := customerByID[r.CustomerID]
		if !ok {
			return fmt.Errorf("%s: order %d: %w %d", op, r.ID, ErrUnknownCustomer, r.CustomerID)
		}

		items := make([]model.Product, 0, len(r.ProductIDs))
		for _, id := range r.ProductIDs {
			p, ok := productByID[id]
			if !ok {
				return fmt.Errorf("%s: order %d: %w %d", op, r.ID, ErrUnknownProduct, id)
			}
			items = append(items, p)
		}

		orders = append(orders, model.Order{
			ID:           r.ID,
			OrderDate:    r.OrderDate,
			DeliveryDate: r.DeliveryDate,
			Status:       r.Status,
			Customer:     customer,
			Products:     items,
		})
	}

	s.customers = slices.Clone(customers)
	s.products = slices.Clone(products)
	s.orders = orders
	s.loaded = true

	return nil
}

// Loaded сообщает, заполнено ли хранилище
func (s *Store) Loaded() bool {
	return s.loaded
}

// AllCustomers возвращает всех покупателей в порядке загрузки
// вызов до Load — ошибка программиста, поэтому паника
func (s *Store) AllCustomers() []model.Customer {
	s.mustBeLoaded()
	return slices.Clone(s.customers)
}

// AllProducts возвращает все товары в порядке загрузки
func (s *Store) AllProducts() []model.Product {
	s.mustBeLoaded()
	return slices.Clone(s.products)
}

// AllOrders возвращает все заказы в порядке загрузки
// списки товаров тоже копируются, иначе вызывающий мог бы поменять хранилище
func (s *Store) AllOrders() []model.Order {
	s.mustBeLoaded()
	out := slices.Clone(s.orders)
	for i := range out {
		out[i].Products = slices.Clone(out[i].Products)
	}
	return out
}

func (s *Store) mustBeLoaded() {
	if !s.loaded {
		panic(ErrNotLoaded)
	}
}
