package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/washify/booking/config"
	"github.com/washify/booking/internal/bootstrap"
	"github.com/washify/booking/internal/email"
	"github.com/washify/booking/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger("notification-worker")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	mailClient := email.NewClient(cfg.Email)
	dispatcher := email.NewDispatcher(mailClient, cfg.Booking.EmailRetryAttempts, logger)

	logger.Infow("startup", "status", "consuming", "topic", cfg.Kafka.NotificationsTopic)
	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Errorw("decode event", "err", err)
			return nil
		}
		// Dispatch swallows delivery failures after its bounded retry, so
		// a bad recipient never wedges the consumer group.
		dispatcher.Dispatch(ctx, event)
		return nil
	}); err != nil && ctx.Err() == nil {
		logger.Fatalw("consumer stopped", "err", err)
	}
}
