// Package execution turns order-book snapshots into a simulated
// alternating-side stream of market orders and stores the results.
package execution

import (
	"main/internal/model"
	"main/internal/service"
)

// Service stores execution orders keyed by order id.
type Service struct {
	store *service.Store[string, model.ExecutionOrder]
}

// New creates an empty execution service.
func New() *Service {
	return &Service{store: service.NewStore[string, model.ExecutionOrder]()}
}

// Execute stores the order and notifies listeners.
func (s *Service) Execute(order model.ExecutionOrder) error {
	s.store.Put(order.OrderID, order)
	return s.store.Dispatch(order)
}

// Order returns an executed order by order id.
func (s *Service) Order(orderID string) (model.ExecutionOrder, error) {
	return s.store.Get(orderID)
}

// AddListener registers a downstream listener for executed orders.
func (s *Service) AddListener(l service.Listener[model.ExecutionOrder]) {
	s.store.AddListener(l)
}
