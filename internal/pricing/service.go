// Package pricing stores the latest reference price per product and
// fans each update out, normally to the streaming stage.
package pricing

import (
	"main/internal/model"
	"main/internal/service"
)

// Service keeps reference prices keyed by product id.
type Service struct {
	store *service.Store[string, model.ReferencePrice]
}

// New creates an empty pricing service.
func New() *Service {
	return &Service{store: service.NewStore[string, model.ReferencePrice]()}
}

// Ingest stores the price and notifies listeners.
func (s *Service) Ingest(p model.ReferencePrice) error {
	s.store.Put(p.Product.ID, p)
	return s.store.Dispatch(p)
}

// Price returns the most recent reference price for a product id.
func (s *Service) Price(productID string) (model.ReferencePrice, error) {
	return s.store.Get(productID)
}

// AddListener registers a downstream listener for price updates.
func (s *Service) AddListener(l service.Listener[model.ReferencePrice]) {
	s.store.AddListener(l)
}
