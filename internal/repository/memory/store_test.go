package memory_test

import (
	"testing"
	"time"

	"github.com/asquebay/order-queries/internal/model"
	"github.com/asquebay/order-queries/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

func fixture() ([]model.Customer, []model.Product, []model.OrderRecord) {
	customers := []model.Customer{
		{ID: 1, Name: "Ann", Tier: 1},
		{ID: 2, Name: "Bob", Tier: 2},
	}
	products := []model.Product{
		{ID: 10, Name: "Dune", Category: "Books", Price: 120},
		{ID: 11, Name: "Yo-yo", Category: "Toys", Price: 5},
	}
	records := []model.OrderRecord{
		{ID: 100, OrderDate: model.Date(2021, time.February, 3), CustomerID: 2, ProductIDs: []int64{10, 11, 10}},
		{ID: 101, OrderDate: model.Date(2021, time.January, 3), CustomerID: 1, ProductIDs: []int64{11}},
	}
	return customers, products, records
}

func TestStore_LoadResolvesReferences(t *testing.T) {
	s := memory.NewStore()
	require.False(t, s.Loaded())

	require.NoError(t, s.Load(fixture()))
	require.True(t, s.Loaded())

	orders := s.AllOrders()
	require.Len(t, orders, 2)
	require.Equal(t, int64(100), orders[0].ID)
	require.Equal(t, "Bob", orders[0].Customer.Name)
	require.Equal(t, []int64{10, 11, 10}, []int64{orders[0].Products[0].ID, orders[0].Products[1].ID, orders[0].Products[2].ID})

	require.Len(t, s.AllCustomers(), 2)
	require.Len(t, s.AllProducts(), 2)
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	s := memory.NewStore()
	require.NoError(t, s.Load(fixture()))

	products := s.AllProducts()
	products[0].Price = 0

	require.Equal(t, 120.0, s.AllProducts()[0].Price)
}

func TestStore_OrderProductsAreCopies(t *testing.T) {
	s := memory.NewStore()
	require.NoError(t, s.Load(fixture()))

	orders := s.AllOrders()
	orders[0].Products[0].Price = 0
	orders[0].Products = append(orders[0].Products[:1], orders[0].Products[2:]...)

	again := s.AllOrders()
	require.Equal(t, 120.0, again[0].Products[0].Price)
	require.Len(t, again[0].Products, 3)
	require.Equal(t, int64(11), again[0].Products[1].ID)
}

func TestStore_PanicsBeforeLoad(t *testing.T) {
	s := memory.NewStore()

	require.PanicsWithValue(t, memory.ErrNotLoaded, func() { s.AllOrders() })
	require.PanicsWithValue(t, memory.ErrNotLoaded, func() { s.AllProducts() })
	require.PanicsWithValue(t, memory.ErrNotLoaded, func() { s.AllCustomers() })
}

func TestStore_LoadRejectsBadSeed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord)
		want   error
	}{
		{
			name: "duplicate customer",
			mutate: func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord) {
				return append(c, model.Customer{ID: 1, Name: "Again", Tier: 1}), p, r
			},
			want: memory.ErrDuplicateID,
		},
		{
			name: "duplicate product",
			mutate: func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord) {
				return c, append(p, model.Product{ID: 11, Name: "Kite", Category: "Toys", Price: 1}), r
			},
			want: memory.ErrDuplicateID,
		},
		{
			name: "duplicate order",
			mutate: func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord) {
				dup := r[0]
				return c, p, append(r, dup)
			},
			want: memory.ErrDuplicateID,
		},
		{
			name: "unknown customer",
			mutate: func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord) {
				r[0].CustomerID = 99
				return c, p, r
			},
			want: memory.ErrUnknownCustomer,
		},
		{
			name: "unknown product",
			mutate: func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord) {
				r[1].ProductIDs = []int64{42}
				return c, p, r
			},
			want: memory.ErrUnknownProduct,
		},
		{
			name: "negative price",
			mutate: func(c []model.Customer, p []model.Product, r []model.OrderRecord) ([]model.Customer, []model.Product, []model.OrderRecord) {
				p[0].Price = -3
				return c, p, r
			},
			want: memory.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.NewStore()
			err := s.Load(tt.mutate(fixture()))
			require.ErrorIs(t, err, tt.want)
			require.False(t, s.Loaded())
		})
	}
}

func TestStore_LoadTwice(t *testing.T) {
	s := memory.NewStore()
	require.NoError(t, s.Load(fixture()))
	require.ErrorIs(t, s.Load(fixture()), memory.ErrAlreadyLoaded)
}
