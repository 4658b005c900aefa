package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asquebay/order-queries/internal/model"
	"github.com/asquebay/order-queries/internal/repository/memory"
	"github.com/asquebay/order-queries/internal/repository/seed"

	"github.com/stretchr/testify/require"
)

func TestNew_EmbeddedSeedLoadsIntoStore(t *testing.T) {
	ctx := context.Background()

	l, err := seed.New("")
	require.NoError(t, err)

	customers, err := l.LoadCustomers(ctx)
	require.NoError(t, err)
	products, err := l.LoadProducts(ctx)
	require.NoError(t, err)
	orders, err := l.LoadOrders(ctx)
	require.NoError(t, err)

	require.Len(t, customers, 10)
	require.Len(t, products, 30)
	require.Len(t, orders, 20)

	s := memory.NewStore()
	require.NoError(t, s.Load(customers, products, orders))
}

func TestParse_OrderRows(t *testing.T) {
	raw := []byte(`
customers:
  - {id: 1, name: Ann, tier: 2}
products:
  - {id: 5, name: Dune, category: Books, price: 120.5}
orders:
  - {id: 9, order_date: "2021-02-10", status: NEW, customer_id: 1, product_ids: [5, 5]}
`)
	l, err := seed.Parse(raw)
	require.NoError(t, err)

	orders, err := l.LoadOrders(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.OrderRecord{{
		ID:         9,
		OrderDate:  model.Date(2021, time.February, 10),
		Status:     "NEW",
		CustomerID: 1,
		ProductIDs: []int64{5, 5},
	}}, orders)

	products, err := l.LoadProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Product{{ID: 5, Name: "Dune", Category: "Books", Price: 120.5}}, products)
}

func TestParse_Errors(t *testing.T) {
	_, err := seed.Parse([]byte("customers: [oops"))
	require.Error(t, err)

	_, err = seed.Parse([]byte(`orders: [{id: 1, order_date: "10.02.2021", customer_id: 1}]`))
	require.ErrorContains(t, err, "bad order_date")
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customers:\n  - {id: 3, name: Cid, tier: 1}\n"), 0o600))

	l, err := seed.New(path)
	require.NoError(t, err)

	customers, err := l.LoadCustomers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Customer{{ID: 3, Name: "Cid", Tier: 1}}, customers)

	_, err = seed.New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
