package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/notify"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, c entities.OrderConfirmation) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      notify.MessageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	sender   ConfirmationSender
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, sender ConfirmationSender) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		sender:   sender,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if !h.process(ctx, m) {
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// process отправляет письмо; при ошибке сообщение уходит в DLQ.
// false означает, что сообщение не обработано и не должно коммититься.
func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) bool {
	start := time.Now()
	defer func() { notificationDuration.Observe(time.Since(start).Seconds()) }()

	err := h.handleConfirmation(ctx, m)
	if err == nil {
		notificationsSent.Inc()
		return true
	}

	notificationsFailed.Inc()
	h.logger.Error("failed to handle message", slog.String("key", string(m.Key)), slog.Any("error", err))

	// В библиотеке уже есть retry
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return false
	}
	notificationsDLQ.Inc()
	return true
}

// confirmationMessage повторяет поля entities.OrderConfirmation, нужные для проверки.
type confirmationMessage struct {
	OrderID string `json:"order_id" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

func (h *kafkaHandler) handleConfirmation(ctx context.Context, m kafka.Message) error {
	if kind := messageKind(m); kind != "" && kind != string(entities.NotificationOrderConfirmation) {
		return fmt.Errorf("unsupported notification kind %q", kind)
	}

	var head confirmationMessage
	if err := json.Unmarshal(m.Value, &head); err != nil {
		return fmt.Errorf("failed to unmarshal confirmation: %w", err)
	}
	if err := h.validate.Struct(head); err != nil {
		return fmt.Errorf("invalid confirmation data: %w", err)
	}

	var c entities.OrderConfirmation
	if err := json.Unmarshal(m.Value, &c); err != nil {
		return fmt.Errorf("failed to unmarshal confirmation: %w", err)
	}

	return h.sender.SendConfirmation(ctx, c)
}

func messageKind(m kafka.Message) string {
	for _, hdr := range m.Headers {
		if hdr.Key == notify.HeaderKind {
			return string(hdr.Value)
		}
	}
	return ""
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
