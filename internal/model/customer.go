package model

import "fmt"

// Customer — покупатель, tier используется для отбора заказов
type Customer struct {
	ID   int64  `yaml:"id" validate:"gt=0"`
	Name string `yaml:"name" validate:"required"`
	Tier int    `yaml:"tier" validate:"gte=1,lte=3"`
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer(id=%d, name=%q, tier=%d)", c.ID, c.Name, c.Tier)
}
