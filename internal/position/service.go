// Package position aggregates booked trades into per-book net
// positions, one Position per product.
package position

import (
	"main/internal/model"
	"main/internal/service"
)

// Service maintains positions keyed by product id.
type Service struct {
	store *service.Store[string, *model.Position]
}

// New creates an empty position service.
func New() *Service {
	return &Service{store: service.NewStore[string, *model.Position]()}
}

// ApplyTrade merges a trade into the product's position, creating a
// zero position on first sight, then fans the updated position out.
func (s *Service) ApplyTrade(t model.Trade) error {
	id := t.Product.ID
	pos, err := s.store.Get(id)
	if err != nil {
		pos = model.NewPosition(t.Product)
		s.store.Put(id, pos)
	}
	pos.ApplyTrade(t)
	return s.store.Dispatch(pos)
}

// Position returns the current position for a product id.
func (s *Service) Position(productID string) (*model.Position, error) {
	return s.store.Get(productID)
}

// AddListener registers a downstream listener for position updates.
// Listeners receive the live Position and must not retain it past the
// notification call.
func (s *Service) AddListener(l service.Listener[*model.Position]) {
	s.store.AddListener(l)
}

// OnAdd lets the service sit directly behind the booking stage.
func (s *Service) OnAdd(t model.Trade) error {
	return s.ApplyTrade(t)
}
