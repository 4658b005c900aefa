// этот код не зависит от приложения,
// и нужен только для проверки отчёта, опубликованного в кафку (report.sink: kafka)
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
)

func main() {
	// конфигурация из config.yaml
	brokerAddress := "localhost:9092"
	topic := "exercises"

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{brokerAddress},
		Topic:       topic,
		StartOffset: kafka.FirstOffset, // читаем с начала, отчёт короткий
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Reading report lines from Kafka...")
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("Failed to read message: %v", err)
			os.Exit(1)
		}
		fmt.Printf("[%s] %s\n", msg.Key, msg.Value)
	}
}
