package ordered

import (
	"errors"
	"fmt"
	"iter"
)

var ErrDuplicateKey = errors.New("duplicate key")

// Map — словарь, сохраняющий порядок первой вставки ключей
// итерация всегда идёт в этом порядке, поэтому вывод детерминирован
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New создаёт пустой Map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Set добавляет или обновляет значение
// при обновлении позиция ключа не меняется
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Insert добавляет значение только если ключа ещё нет
func (m *Map[K, V]) Insert(key K, value V) error {
	if _, ok := m.values[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	m.Set(key, value)
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys возвращает копию ключей в порядке вставки
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// All перебирает пары ключ-значение в порядке вставки
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// GroupBy раскладывает элементы по ключу, сохраняя порядок и ключей, и элементов внутри группы
// в отличие от группировки соседних элементов, одинаковые ключи собираются вместе независимо от позиции
func GroupBy[T any, K comparable](items []T, key func(T) K) *Map[K, []T] {
	m := New[K, []T]()
	for _, item := range items {
		k := key(item)
		group, _ := m.Get(k)
		m.Set(k, append(group, item))
	}
	return m
}

// ToMap строит словарь по одному значению на элемент
// повторный ключ — ошибка, а не тихая перезапись
func ToMap[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) (*Map[K, V], error) {
	m := New[K, V]()
	for _, item := range items {
		if err := m.Insert(key(item), value(item)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Reduce сворачивает элементы каждой группы в одно значение
// первое встреченное значение группы передаётся в merge как acc
func Reduce[T any, K comparable](items []T, key func(T) K, merge func(acc, next T) T) *Map[K, T] {
	m := New[K, T]()
	for _, item := range items {
		k := key(item)
		acc, ok := m.Get(k)
		if !ok {
			m.Set(k, item)
			continue
		}
		m.Set(k, merge(acc, item))
	}
	return m
}
