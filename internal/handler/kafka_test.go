package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront/internal/notify"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeDLQ struct {
	messages []kafka.Message
	err      error
}

func (w *fakeDLQ) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error { return nil }

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func confirmationMessageOf(value string, kind entities.NotificationKind) kafka.Message {
	return kafka.Message{
		Key:     []byte("order-1"),
		Value:   []byte(value),
		Headers: []kafka.Header{{Key: notify.HeaderKind, Value: []byte(kind)}},
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	const valid = `{"order_id":"order-1","customer_name":"Jane Doe","email":"jane@example.com","total":"990"}`

	testCases := []struct {
		name         string
		message      kafka.Message
		mockBehavior func(sender *mocks.MockConfirmationSender)
		dlqErr       error
		wantDLQ      bool
		wantCommit   bool
	}{
		{
			name:    "sent",
			message: confirmationMessageOf(valid, entities.NotificationOrderConfirmation),
			mockBehavior: func(sender *mocks.MockConfirmationSender) {
				sender.EXPECT().SendConfirmation(mock.Anything, mock.MatchedBy(func(c entities.OrderConfirmation) bool {
					return c.OrderID == "order-1" && c.Email == "jane@example.com" && c.Total.String() == "990"
				})).Return(nil).Once()
			},
			wantCommit: true,
		},
		{
			name:    "smtp failure goes to DLQ",
			message: confirmationMessageOf(valid, entities.NotificationOrderConfirmation),
			mockBehavior: func(sender *mocks.MockConfirmationSender) {
				sender.EXPECT().SendConfirmation(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:       "missing email",
			message:    confirmationMessageOf(`{"order_id":"order-1"}`, entities.NotificationOrderConfirmation),
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:       "malformed json",
			message:    confirmationMessageOf(`{`, entities.NotificationOrderConfirmation),
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:       "unknown kind",
			message:    confirmationMessageOf(valid, "refund"),
			wantDLQ:    true,
			wantCommit: true,
		},
		{
			name:    "DLQ unavailable leaves message uncommitted",
			message: confirmationMessageOf(valid, entities.NotificationOrderConfirmation),
			mockBehavior: func(sender *mocks.MockConfirmationSender) {
				sender.EXPECT().SendConfirmation(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			dlqErr: errors.New("broker down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sender := mocks.NewMockConfirmationSender(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(sender)
			}
			reader := &fakeReader{messages: []kafka.Message{tc.message}}
			dlq := &fakeDLQ{err: tc.dlqErr}

			h := &kafkaHandler{
				dlq:      dlq,
				reader:   reader,
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: validator.New(),
				sender:   sender,
			}
			h.Consume(context.Background())

			if tc.wantCommit {
				assert.Len(t, reader.committed, 1)
			} else {
				assert.Empty(t, reader.committed)
			}
			if tc.wantDLQ {
				assert.Len(t, dlq.messages, 1)
				assert.Equal(t, tc.message.Value, dlq.messages[0].Value)
			} else {
				assert.Empty(t, dlq.messages)
			}
		})
	}
}
