package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout — формат календарной даты без времени
const DateLayout = "2006-01-02"

// Order — заказ с уже разрешёнными ссылками на покупателя и товары
// товары могут повторяться, порядок важен
type Order struct {
	ID           int64
	OrderDate    time.Time
	DeliveryDate time.Time
	Status       string
	Customer     Customer
	Products     []Product
}

// Total — сумма цен всех товаров заказа
func (o Order) Total() float64 {
	var sum float64
	for _, p := range o.Products {
		sum += p.Price
	}
	return sum
}

func (o Order) String() string {
	ids := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, fmt.Sprint(p.ID))
	}
	return fmt.Sprintf("Order(id=%d, order_date=%s, delivery_date=%s, status=%s, customer_id=%d, product_ids=[%s])",
		o.ID, FormatDate(o.OrderDate), FormatDate(o.DeliveryDate), o.Status, o.Customer.ID, strings.Join(ids, ","))
}

// OrderRecord — заказ в том виде, в каком его отдаёт источник данных:
// покупатель и товары заданы только идентификаторами
type OrderRecord struct {
	ID           int64     `validate:"gt=0"`
	OrderDate    time.Time `validate:"required"`
	DeliveryDate time.Time
	Status       string
	CustomerID   int64   `validate:"gt=0"`
	ProductIDs   []int64 `validate:"dive,gt=0"`
}

// Date возвращает полночь UTC указанного дня
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате DateLayout, пустая строка даёт нулевое время
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate печатает дату, для нулевой — "-"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

var validate = validator.New()

// Validate проверяет корректность структуры на основе тегов validate
func (p *Product) Validate() error {
	return validate.Struct(p)
}

// Validate проверяет корректность структуры на основе тегов validate
func (c *Customer) Validate() error {
	return validate.Struct(c)
}

// Validate проверяет корректность структуры на основе тегов validate
func (r *OrderRecord) Validate() error {
	return validate.Struct(r)
}
