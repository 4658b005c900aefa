package model

import (
	"fmt"
	"strconv"
)

// Product — товар каталога
// значение неизменяемое: любые "изменения" возвращают копию
type Product struct {
	ID       int64   `yaml:"id" validate:"gt=0"`
	Name     string  `yaml:"name" validate:"required"`
	Category string  `yaml:"category" validate:"required"`
	Price    float64 `yaml:"price" validate:"gte=0"`
}

// WithPrice возвращает копию товара с новой ценой, исходный не трогаем
func (p Product) WithPrice(price float64) Product {
	p.Price = price
	return p
}

// InCategory сравнивает категорию без учёта регистра,
// регистр сворачивается только для ASCII-букв
func (p Product) InCategory(category string) bool {
	return equalFoldASCII(p.Category, category)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (p Product) String() string {
	return fmt.Sprintf("Product(id=%d, name=%q, category=%s, price=%s)",
		p.ID, p.Name, p.Category, FormatPrice(p.Price))
}

// FormatPrice печатает цену без лишних нулей, но без потери точности
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
