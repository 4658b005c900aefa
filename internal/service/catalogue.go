package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/asquebay/order-queries/internal/lib/ordered"
	"github.com/asquebay/order-queries/internal/model"
)

// параметры фиксированного набора запросов
const (
	CategoryBooks = "Books"
	CategoryToys  = "Toys"

	ToysDiscount  = 0.9
	BooksMinPrice = 100
	PreferredTier = 2
	RecentOrdersN = 3
)

var (
	tierWindowFrom = model.Date(2021, time.February, 1)
	tierWindowTo   = model.Date(2021, time.April, 1)
	februaryFrom   = model.Date(2021, time.February, 1)
	februaryTo     = model.Date(2021, time.March, 1)
)

// CustomerOrders — заказы одного покупателя в порядке загрузки
type CustomerOrders struct {
	Customer model.Customer
	Orders   []model.Order
}

// OrderTotal — заказ и сумма цен его товаров
type OrderTotal struct {
	Order model.Order
	Total float64
}

// Catalogue — набор запросов только для чтения поверх хранилища
// у каталога нет своего состояния: повторный вызов на том же хранилище даёт тот же результат
type Catalogue struct {
	store EntityStore
}

// NewCatalogue создаёт каталог запросов над хранилищем
func NewCatalogue(store EntityStore) *Catalogue {
	return &Catalogue{store: store}
}

// BooksOver100 — товары категории Books дороже 100
func (c *Catalogue) BooksOver100() []model.Product {
	return filter(c.store.AllProducts(), func(p model.Product) bool {
		return p.InCategory(CategoryBooks) && p.Price > BooksMinPrice
	})
}

// DiscountedToys — товары категории Toys со скидкой 10%
// возвращаются копии, записи в хранилище не меняются
func (c *Catalogue) DiscountedToys() []model.Product {
	toys := c.productsIn(CategoryToys)
	out := make([]model.Product, 0, len(toys))
	for _, p := range toys {
		out = append(out, p.WithPrice(p.Price*ToysDiscount))
	}
	return out
}

// TierTwoProducts — уникальные товары из заказов покупателей tier 2,
// сделанных строго между 01.02.2021 и 01.04.2021
// дубликаты отбрасываются по id, порядок — первого появления
func (c *Catalogue) TierTwoProducts() []model.Product {
	orders := filter(c.ordersBetween(tierWindowFrom, tierWindowTo), func(o model.Order) bool {
		return o.Customer.Tier == PreferredTier
	})

	seen := make(map[int64]struct{})
	var out []model.Product
	for _, o := range orders {
		for _, p := range o.Products {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// MostRecentOrders — n последних заказов по дате, от новых к старым
// при равных датах сохраняется исходный порядок
func (c *Catalogue) MostRecentOrders(n int) []model.Order {
	orders := c.store.AllOrders()
	slices.SortStableFunc(orders, func(a, b model.Order) int {
		return b.OrderDate.Compare(a.OrderDate)
	})
	if n < 0 {
		n = 0
	}
	return orders[:min(n, len(orders))]
}

// FebruaryTotal — сумма цен всех товаров в заказах, сделанных строго между 01.02.2021 и 01.03.2021
func (c *Catalogue) FebruaryTotal() float64 {
	var sum float64
	for _, o := range c.ordersBetween(februaryFrom, februaryTo) {
		for _, p := range o.Products {
			sum += p.Price
		}
	}
	return sum
}

// BookStatistics — count, sum, average, min и max цен товаров категории Books
func (c *Catalogue) BookStatistics() Statistics {
	books := c.productsIn(CategoryBooks)
	prices := make([]float64, 0, len(books))
	for _, p := range books {
		prices = append(prices, p.Price)
	}
	return Summarize(prices)
}

// OrdersByCustomer группирует заказы по id покупателя
// покупатели без заказов в результат не попадают
func (c *Catalogue) OrdersByCustomer() *ordered.Map[int64, CustomerOrders] {
	groups := ordered.GroupBy(c.store.AllOrders(), func(o model.Order) int64 {
		return o.Customer.ID
	})

	out := ordered.New[int64, CustomerOrders]()
	for id, orders := range groups.All() {
		out.Set(id, CustomerOrders{Customer: orders[0].Customer, Orders: orders})
	}
	return out
}

// OrderTotals — сумма по каждому заказу, ключ — id заказа
// два заказа с одним id — ошибка модели данных, а не повод перезаписать значение
func (c *Catalogue) OrderTotals() (*ordered.Map[int64, OrderTotal], error) {
	const op = "service.Catalogue.OrderTotals"

	m, err := ordered.ToMap(c.store.AllOrders(),
		func(o model.Order) int64 { return o.ID },
		func(o model.Order) OrderTotal { return OrderTotal{Order: o, Total: o.Total()} },
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// MostExpensiveByCategory — самый дорогой товар в каждой категории
// при равной цене остаётся первый встреченный
func (c *Catalogue) MostExpensiveByCategory() *ordered.Map[string, model.Product] {
	return ordered.Reduce(c.store.AllProducts(),
		func(p model.Product) string { return p.Category },
		func(acc, next model.Product) model.Product {
			if next.Price > acc.Price {
				return next
			}
			return acc
		},
	)
}

func (c *Catalogue) productsIn(category string) []model.Product {
	return filter(c.store.AllProducts(), func(p model.Product) bool {
		return p.InCategory(category)
	})
}

// ordersBetween — заказы с датой строго после from и строго до to
func (c *Catalogue) ordersBetween(from, to time.Time) []model.Order {
	return filter(c.store.AllOrders(), func(o model.Order) bool {
		return o.OrderDate.After(from) && o.OrderDate.Before(to)
	})
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
