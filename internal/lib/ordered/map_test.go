package ordered_test

import (
	"testing"

	"github.com/asquebay/order-queries/internal/lib/ordered"

	"github.com/stretchr/testify/require"
)

func TestMap_KeepsInsertionOrder(t *testing.T) {
	m := ordered.New[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 20)

	require.Equal(t, []string{"b", "a", "c"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 20, v)
	require.Equal(t, 3, m.Len())

	var keys []string
	var values []int
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal(t, []string{"b", "a", "c"}, keys)
	require.Equal(t, []int{1, 20, 3}, values)
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := ordered.New[int, int]()
	for i := range 5 {
		m.Set(i, i)
	}

	var seen []int
	for k := range m.All() {
		seen = append(seen, k)
		if k == 1 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, seen)
}

func TestInsert_RejectsDuplicate(t *testing.T) {
	m := ordered.New[int, string]()
	require.NoError(t, m.Insert(1, "x"))

	err := m.Insert(1, "y")
	require.ErrorIs(t, err, ordered.ErrDuplicateKey)

	v, _ := m.Get(1)
	require.Equal(t, "x", v)
}

func TestGroupBy_CollectsNonAdjacentKeys(t *testing.T) {
	g := ordered.GroupBy([]string{"a1", "b1", "a2", "c1", "b2"}, func(s string) byte { return s[0] })

	require.Equal(t, []byte{'a', 'b', 'c'}, g.Keys())
	a, _ := g.Get('a')
	require.Equal(t, []string{"a1", "a2"}, a)
	b, _ := g.Get('b')
	require.Equal(t, []string{"b1", "b2"}, b)
}

func TestToMap_FailsOnCollision(t *testing.T) {
	_, err := ordered.ToMap([]int{1, 2, 1}, func(v int) int { return v }, func(v int) int { return v * 10 })
	require.ErrorIs(t, err, ordered.ErrDuplicateKey)

	m, err := ordered.ToMap([]int{3, 1, 2}, func(v int) int { return v }, func(v int) int { return v * 10 })
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, m.Keys())
	v, _ := m.Get(2)
	require.Equal(t, 20, v)
}

func TestReduce_KeepsFirstOnTie(t *testing.T) {
	type item struct {
		group string
		name  string
		score int
	}
	items := []item{
		{"x", "first", 5},
		{"x", "second", 5},
		{"y", "only", 1},
	}

	m := ordered.Reduce(items, func(i item) string { return i.group }, func(acc, next item) item {
		if next.score > acc.score {
			return next
		}
		return acc
	})

	x, _ := m.Get("x")
	require.Equal(t, "first", x.name)
	require.Equal(t, []string{"x", "y"}, m.Keys())
}
