package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// LogSink пишет каждую строку отдельной записью лога уровня INFO
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(ctx context.Context, line string) error {
	s.log.InfoContext(ctx, line)
	return nil
}

// WriterSink пишет строки в io.Writer, по одной на строку
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(_ context.Context, line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// Collector копит строки в памяти
type Collector struct {
	mu    sync.Mutex
	lines []string
}

func (c *Collector) Write(_ context.Context, line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	return nil
}

// Lines возвращает копию накопленных строк
func (c *Collector) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}
