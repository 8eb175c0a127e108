package service_test

import (
	"context"
	"sync"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
)

// memStore - OrderRepo и NotificationRepo в памяти с тем же условным
// обновлением статуса, что и в Postgres.
type memStore struct {
	mu            sync.Mutex
	orders        map[string]entities.Order
	notifications map[string]entities.Notification
	transitions   int
}

func newMemStore(orders ...entities.Order) *memStore {
	s := &memStore{
		orders:        make(map[string]entities.Order),
		notifications: make(map[string]entities.Notification),
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *memStore) GetOrderByID(_ context.Context, orderID string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (s *memStore) GetOrderByCorrelationID(_ context.Context, correlationID string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.CorrelationID != "" && o.CorrelationID == correlationID {
			return o, nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *memStore) LatestOrders(context.Context, int) ([]entities.Order, error) {
	return nil, nil
}

func (s *memStore) SaveOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return nil
}

func (s *memStore) SaveItems(_ context.Context, orderID string, items []entities.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[orderID]
	o.Items = items
	s.orders[orderID] = o
	return nil
}

func (s *memStore) UpdateStatus(_ context.Context, orderID string, from entities.OrderStatus, upd entities.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok || o.Status != from {
		return entities.ErrStatusConflict
	}
	o.Status = upd.Status
	if upd.Provider != "" {
		o.Provider = upd.Provider
	}
	if upd.CorrelationID != "" {
		o.CorrelationID = upd.CorrelationID
	}
	if upd.PaymentReference != "" {
		o.PaymentReference = upd.PaymentReference
	}
	if upd.FailureReason != "" {
		o.FailureReason = upd.FailureReason
	}
	if !upd.PaidAt.IsZero() {
		o.PaidAt = upd.PaidAt
	}
	s.orders[orderID] = o
	s.transitions++
	return nil
}

func (s *memStore) EnqueueNotification(_ context.Context, n entities.Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := n.OrderID + "/" + string(n.Kind)
	if _, ok := s.notifications[key]; ok {
		return false, nil
	}
	s.notifications[key] = n
	return true, nil
}

func (s *memStore) order(id string) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) stats() (transitions, notifications int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitions, len(s.notifications)
}
