package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer публикует строки отчёта в топик кафки
// реализует report.Sink
type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
	run    string
}

// NewProducer создает новый экземпляр продюсера
// run — идентификатор запуска, кладётся в ключ сообщения,
// чтобы все строки одного запуска попадали в одну партицию и не перемешивались
func NewProducer(brokers []string, topic, run string, log *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		// строки отправляются по одной и синхронно, батч не копим
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		log:    log,
		run:    run,
	}
}

// Write отправляет одну строку отчёта
func (p *Producer) Write(ctx context.Context, line string) error {
	const op = "transport.kafka.Producer.Write"

	err := p.writer.WriteMessages(ctx, p.message(line))
	if err != nil {
		p.log.Error("failed to publish report line", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p *Producer) message(line string) kafka.Message {
	return kafka.Message{
		Key:   []byte(p.run),
		Value: []byte(line),
	}
}

// Close дожидается отправки и закрывает writer
func (p *Producer) Close() error {
	p.log.Info("closing kafka producer")
	return p.writer.Close()
}
