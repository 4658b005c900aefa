package report_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/asquebay/order-queries/internal/lib/logger"
	"github.com/asquebay/order-queries/internal/lib/ordered"
	"github.com/asquebay/order-queries/internal/report"

	"github.com/stretchr/testify/require"
)

type failingSink struct{}

func (failingSink) Write(context.Context, string) error { return errors.New("sink is down") }

func TestReporter_SequenceAndMapping(t *testing.T) {
	ctx := context.Background()
	c := &report.Collector{}
	r := report.New(c)

	require.NoError(t, r.Banner(ctx, "Exercise 1"))
	require.NoError(t, report.Sequence(ctx, r, []int{3, 1, 2}))

	m := ordered.New[string, float64]()
	m.Set("b", 2.5)
	m.Set("a", 1)
	require.NoError(t, report.Mapping(ctx, r, m, func(k string, v float64) (string, string) {
		return k, fmt.Sprint(v)
	}))
	require.NoError(t, r.Value(ctx, 35.0))

	require.Equal(t, []string{
		"*************Exercise 1***********",
		"3", "1", "2",
		"b->2.5", "a->1",
		"35",
	}, c.Lines())
}

func TestReporter_PropagatesSinkError(t *testing.T) {
	r := report.New(failingSink{})

	err := report.Sequence(context.Background(), r, []string{"x"})
	require.ErrorContains(t, err, "sink is down")
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(report.NewWriterSink(&buf))

	require.NoError(t, r.Rule(context.Background()))
	require.NoError(t, r.Line(context.Background(), "done"))
	require.Equal(t, "----------------------------------\ndone\n", buf.String())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := report.NewLogSink(logger.NewWithWriter(&buf, "info", "text"))

	require.NoError(t, sink.Write(context.Background(), "count = 0"))
	require.Contains(t, buf.String(), `msg="count = 0"`)
}
