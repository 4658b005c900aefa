package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/asquebay/order-queries/internal/model"
	"github.com/asquebay/order-queries/internal/report"
)

// Exercise — один запрос каталога вместе с тем, как напечатать его результат
type Exercise struct {
	Number int
	Title  string
	Run    func(ctx context.Context, r *report.Reporter) error
}

// ExerciseRunner последовательно выполняет все упражнения и печатает результаты
type ExerciseRunner struct {
	catalogue *Catalogue
	reporter  *report.Reporter
	log       *slog.Logger
}

// NewExerciseRunner создаёт раннер упражнений
func NewExerciseRunner(catalogue *Catalogue, reporter *report.Reporter, log *slog.Logger) *ExerciseRunner {
	return &ExerciseRunner{
		catalogue: catalogue,
		reporter:  reporter,
		log:       log,
	}
}

// Exercises возвращает упражнения в порядке выполнения
// номера сохранены исторические, с пропусками
func (s *ExerciseRunner) Exercises() []Exercise {
	c := s.catalogue
	return []Exercise{
		{1, "books with price > 100", func(ctx context.Context, r *report.Reporter) error {
			return report.Sequence(ctx, r, c.BooksOver100())
		}},
		{3, "toys with 10% discount", func(ctx context.Context, r *report.Reporter) error {
			return report.Sequence(ctx, r, c.DiscountedToys())
		}},
		{4, "products ordered by tier 2 customers between 01-Feb-2021 and 01-Apr-2021", func(ctx context.Context, r *report.Reporter) error {
			return report.Sequence(ctx, r, c.TierTwoProducts())
		}},
		{6, "3 most recent orders", func(ctx context.Context, r *report.Reporter) error {
			return report.Sequence(ctx, r, c.MostRecentOrders(RecentOrdersN))
		}},
		{8, "total lump sum of orders placed in Feb 2021", func(ctx context.Context, r *report.Reporter) error {
			return r.Line(ctx, model.FormatPrice(c.FebruaryTotal()))
		}},
		{10, "statistics for products of category Books", func(ctx context.Context, r *report.Reporter) error {
			return r.Value(ctx, c.BookStatistics())
		}},
		{12, "orders grouped by customer", func(ctx context.Context, r *report.Reporter) error {
			return report.Mapping(ctx, r, c.OrdersByCustomer(), func(_ int64, g CustomerOrders) (string, string) {
				return g.Customer.String(), fmt.Sprint(g.Orders)
			})
		}},
		{13, "order id and product total sum", func(ctx context.Context, r *report.Reporter) error {
			totals, err := c.OrderTotals()
			if err != nil {
				return err
			}
			return report.Mapping(ctx, r, totals, func(id int64, t OrderTotal) (string, string) {
				return strconv.FormatInt(id, 10), model.FormatPrice(t.Total)
			})
		}},
		{15, "most expensive product by category", func(ctx context.Context, r *report.Reporter) error {
			return report.Mapping(ctx, r, c.MostExpensiveByCategory(), func(category string, p model.Product) (string, string) {
				return category, p.String()
			})
		}},
	}
}

// Run выполняет все упражнения по очереди
// первая ошибка прерывает выполнение
func (s *ExerciseRunner) Run(ctx context.Context) error {
	const op = "service.ExerciseRunner.Run"
	log := s.log.With(slog.String("op", op))

	if err := s.header(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, ex := range s.Exercises() {
		exLog := log.With(slog.Int("exercise", ex.Number))
		exLog.Debug("running exercise", slog.String("title", ex.Title))

		if err := s.reporter.Banner(ctx, fmt.Sprintf("Exercise %d", ex.Number)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := ex.Run(ctx, s.reporter); err != nil {
			exLog.Error("exercise failed", slog.String("error", err.Error()))
			return fmt.Errorf("%s: exercise %d: %w", op, ex.Number, err)
		}
	}

	log.Info("all exercises completed")
	return nil
}

func (s *ExerciseRunner) header(ctx context.Context) error {
	if err := s.reporter.Rule(ctx); err != nil {
		return err
	}
	if err := s.reporter.Line(ctx, "--------------EXERCISES-----------"); err != nil {
		return err
	}
	return s.reporter.Rule(ctx)
}
