package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu        sync.Mutex
	pending   []entities.Notification
	published []string
	fetchErr  error
}

func (s *fakeStore) PendingNotifications(_ context.Context, limit int) ([]entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	var out []entities.Notification
	for _, n := range s.pending {
		if n.PublishedAt == nil && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *fakeStore) MarkNotificationPublished(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.pending {
		if s.pending[i].ID == id {
			s.pending[i].PublishedAt = &now
		}
	}
	s.published = append(s.published, id)
	return nil
}

type fakeWriter struct {
	messages []kafka.Message
	failAt   int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.failAt > 0 && len(w.messages)+1 == w.failAt {
		return errors.New("broker unavailable")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (s *fakeStore) publishedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.published)
}

func (w *fakeWriter) Close() error { return nil }

func newTestPublisher(store OutboxStore, writer MessageWriter) *Publisher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPublisher(logger, store, writer, config.Outbox{Interval: 10 * time.Millisecond, BatchSize: 10})
}

func notification(id, orderID string) entities.Notification {
	return entities.Notification{
		ID:      id,
		OrderID: orderID,
		Kind:    entities.NotificationOrderConfirmation,
		Payload: []byte(`{"order_id":"` + orderID + `"}`),
	}
}

func TestPublisher_PublishPending(t *testing.T) {
	testCases := []struct {
		name          string
		store         *fakeStore
		writer        *fakeWriter
		wantPublished int
		wantMarked    []string
	}{
		{
			name:          "publishes and marks",
			store:         &fakeStore{pending: []entities.Notification{notification("n1", "o1"), notification("n2", "o2")}},
			writer:        &fakeWriter{},
			wantPublished: 2,
			wantMarked:    []string{"n1", "n2"},
		},
		{
			name:          "stops at broker failure",
			store:         &fakeStore{pending: []entities.Notification{notification("n1", "o1"), notification("n2", "o2")}},
			writer:        &fakeWriter{failAt: 2},
			wantPublished: 1,
			wantMarked:    []string{"n1"},
		},
		{
			name:          "store failure",
			store:         &fakeStore{fetchErr: errors.New("db down")},
			writer:        &fakeWriter{},
			wantPublished: 0,
		},
		{
			name:          "nothing pending",
			store:         &fakeStore{},
			writer:        &fakeWriter{},
			wantPublished: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPublisher(tc.store, tc.writer)
			assert.Equal(t, tc.wantPublished, p.publishPending(context.Background()))
			assert.Equal(t, tc.wantMarked, tc.store.published)
		})
	}
}

func TestPublisher_MessageShape(t *testing.T) {
	store := &fakeStore{pending: []entities.Notification{notification("n1", "o1")}}
	writer := &fakeWriter{}
	p := newTestPublisher(store, writer)

	p.publishPending(context.Background())
	// повторный проход не публикует уже отмеченное
	p.publishPending(context.Background())

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "o1", string(msg.Key))
	assert.JSONEq(t, `{"order_id":"o1"}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, HeaderKind, msg.Headers[0].Key)
	assert.Equal(t, string(entities.NotificationOrderConfirmation), string(msg.Headers[0].Value))
}

func TestPublisher_ConsumeStopsOnCancel(t *testing.T) {
	store := &fakeStore{pending: []entities.Notification{notification("n1", "o1")}}
	writer := &fakeWriter{}
	p := newTestPublisher(store, writer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Consume(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		select {
		case <-done:
			return false
		default:
		}
		return store.publishedCount() == 1
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop")
	}
}
