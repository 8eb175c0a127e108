package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"

	"github.com/segmentio/kafka-go"
)

const HeaderKind = "kind"

type OutboxStore interface {
	PendingNotifications(ctx context.Context, limit int) ([]entities.Notification, error)
	MarkNotificationPublished(ctx context.Context, id string) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher переносит записи outbox в Kafka. Запись помечается отправленной
// только после успешной записи в топик, поэтому доставка at-least-once.
type Publisher struct {
	logger    *slog.Logger
	store     OutboxStore
	writer    MessageWriter
	interval  time.Duration
	batchSize int
}

func NewPublisher(logger *slog.Logger, store OutboxStore, writer MessageWriter, cfg config.Outbox) *Publisher {
	return &Publisher{
		logger:    logger.With(slog.String("worker", "outbox")),
		store:     store,
		writer:    writer,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
	}
}

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Consume(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.publishPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// publishPending возвращает количество опубликованных уведомлений.
func (p *Publisher) publishPending(ctx context.Context) int {
	pending, err := p.store.PendingNotifications(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("failed to fetch notifications", slog.Any("error", err))
		return 0
	}

	published := 0
	for _, n := range pending {
		msg := kafka.Message{
			Key:   []byte(n.OrderID),
			Value: n.Payload,
			Headers: []kafka.Header{
				{Key: HeaderKind, Value: []byte(n.Kind)},
			},
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Error("failed to publish notification", slog.String("id", n.ID), slog.Any("error", err))
			return published
		}

		if err := p.store.MarkNotificationPublished(ctx, n.ID); err != nil {
			p.logger.Error("failed to mark notification published", slog.String("id", n.ID), slog.Any("error", err))
			continue
		}
		published++
	}

	if published > 0 {
		p.logger.Debug("notifications published", slog.Int("count", published))
	}
	return published
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
