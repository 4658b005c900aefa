package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/asquebay/order-queries/internal/lib/ordered"
)

// Sink — куда уходят готовые строки отчёта
type Sink interface {
	Write(ctx context.Context, line string) error
}

// Reporter превращает результаты запросов в строки и отдаёт их в Sink
// последовательности печатаются поэлементно, словари — парами key->value в порядке вставки
type Reporter struct {
	sink Sink
}

// New создаёт Reporter поверх sink
func New(sink Sink) *Reporter {
	return &Reporter{sink: sink}
}

// Banner печатает заголовок раздела
func (r *Reporter) Banner(ctx context.Context, title string) error {
	return r.Line(ctx, fmt.Sprintf("*************%s***********", title))
}

// Rule печатает разделитель
func (r *Reporter) Rule(ctx context.Context) error {
	return r.Line(ctx, strings.Repeat("-", 34))
}

// Line отдаёт в sink одну строку
func (r *Reporter) Line(ctx context.Context, line string) error {
	const op = "report.Reporter.Line"

	if err := r.sink.Write(ctx, line); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Value печатает одиночное значение
func (r *Reporter) Value(ctx context.Context, v any) error {
	return r.Line(ctx, fmt.Sprint(v))
}

// Sequence печатает элементы по одному на строку, в исходном порядке
func Sequence[T any](ctx context.Context, r *Reporter, items []T) error {
	for _, item := range items {
		if err := r.Value(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Mapping печатает пары словаря в порядке вставки ключей
func Mapping[K comparable, V any](ctx context.Context, r *Reporter, m *ordered.Map[K, V], format func(K, V) (string, string)) error {
	for k, v := range m.All() {
		key, value := format(k, v)
		if err := r.Line(ctx, key+"->"+value); err != nil {
			return err
		}
	}
	return nil
}
