package sqlquery

import (
	"github.com/Masterminds/squirrel"
)

// таблицы исходных данных, общие для PostgreSQL и SQLite
const (
	TableCustomer     = "customer"
	TableProduct      = "product"
	TableOrder        = "product_order"
	TableOrderProduct = "order_product_relationship"
)

// Builder строит SELECT-запросы для загрузки исходных данных
// формат плейсхолдеров зависит от драйвера
type Builder struct {
	sq squirrel.StatementBuilderType
}

// Postgres — плейсхолдеры в стиле PostgreSQL ($1, $2, ...)
func Postgres() Builder {
	return Builder{sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// SQLite — плейсхолдеры в стиле ?
func SQLite() Builder {
	return Builder{sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)}
}

func (b Builder) Customers() squirrel.SelectBuilder {
	return b.sq.Select("id", "name", "tier").
		From(TableCustomer).
		OrderBy("id")
}

func (b Builder) Products() squirrel.SelectBuilder {
	return b.sq.Select("id", "name", "category", "price").
		From(TableProduct).
		OrderBy("id")
}

func (b Builder) Orders() squirrel.SelectBuilder {
	return b.sq.Select("id", "order_date", "delivery_date", "status", "customer_id").
		From(TableOrder).
		OrderBy("id")
}

// OrderProducts выбирает связи заказ-товар
// position задаёт порядок товаров внутри заказа
func (b Builder) OrderProducts() squirrel.SelectBuilder {
	return b.sq.Select("order_id", "product_id").
		From(TableOrderProduct).
		OrderBy("order_id", "position")
}
