// Package booking is the entry stage of the trade pipeline. It keeps
// every booked trade keyed by trade id and fans each one out, normally
// to the position stage.
package booking

import (
	"main/internal/model"
	"main/internal/service"
)

// Service books trades keyed by trade id.
type Service struct {
	store *service.Store[string, model.Trade]
}

// New creates an empty trade booking service.
func New() *Service {
	return &Service{store: service.NewStore[string, model.Trade]()}
}

// Book stores the trade and notifies listeners. The returned error
// carries any listener failures; the trade is stored regardless.
func (s *Service) Book(t model.Trade) error {
	s.store.Put(t.TradeID, t)
	return s.store.Dispatch(t)
}

// Trade returns a booked trade by trade id.
func (s *Service) Trade(tradeID string) (model.Trade, error) {
	return s.store.Get(tradeID)
}

// AddListener registers a downstream listener for booked trades.
func (s *Service) AddListener(l service.Listener[model.Trade]) {
	s.store.AddListener(l)
}
