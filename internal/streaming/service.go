// Package streaming publishes two-way quote streams derived from
// reference prices.
package streaming

import (
	"main/internal/model"
	"main/internal/service"
)

// DefaultVisibleQty is the fixed visible quantity on each published
// quote level.
const DefaultVisibleQty = model.Quantity(10_000_000)

// Service stores the latest published quote stream per product.
type Service struct {
	store *service.Store[string, model.QuoteStream]
}

// New creates an empty streaming service.
func New() *Service {
	return &Service{store: service.NewStore[string, model.QuoteStream]()}
}

// Publish stores the stream and notifies listeners.
func (s *Service) Publish(qs model.QuoteStream) error {
	s.store.Put(qs.Product.ID, qs)
	return s.store.Dispatch(qs)
}

// Stream returns the most recent quote stream for a product id.
func (s *Service) Stream(productID string) (model.QuoteStream, error) {
	return s.store.Get(productID)
}

// AddListener registers a downstream listener for published streams.
func (s *Service) AddListener(l service.Listener[model.QuoteStream]) {
	s.store.AddListener(l)
}

// Quoter converts each reference price into a two-way quote stream:
// bid at mid minus half the spread, offer at mid plus half, both at a
// fixed visible quantity with nothing hidden. It holds no state.
type Quoter struct {
	svc        *Service
	visibleQty model.Quantity
}

// NewQuoter creates a quoter publishing into svc. A non-positive
// visibleQty falls back to DefaultVisibleQty.
func NewQuoter(svc *Service, visibleQty model.Quantity) *Quoter {
	if visibleQty <= 0 {
		visibleQty = DefaultVisibleQty
	}
	return &Quoter{svc: svc, visibleQty: visibleQty}
}

// OnAdd derives and publishes the quote stream for a price update.
func (q *Quoter) OnAdd(p model.ReferencePrice) error {
	half := p.BidOfferSpread.Half()
	qs := model.QuoteStream{
		Product: p.Product,
		Bid: model.QuoteLevel{
			Price:      p.Mid.Sub(half),
			VisibleQty: q.visibleQty,
			Side:       model.Bid,
		},
		Offer: model.QuoteLevel{
			Price:      p.Mid.Add(half),
			VisibleQty: q.visibleQty,
			Side:       model.Offer,
		},
	}
	return q.svc.Publish(qs)
}
