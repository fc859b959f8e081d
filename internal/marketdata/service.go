// Package marketdata stores order-book snapshots and answers
// top-of-book queries.
package marketdata

import (
	"errors"

	"main/internal/model"
	"main/internal/service"
)

var ErrEmptyBook = errors.New("marketdata: order book has no levels")

// Service keeps the latest order-book snapshot per product.
type Service struct {
	store *service.Store[string, model.OrderBook]
}

// New creates an empty market data service.
func New() *Service {
	return &Service{store: service.NewStore[string, model.OrderBook]()}
}

// Ingest stores the snapshot and notifies listeners.
func (s *Service) Ingest(book model.OrderBook) error {
	s.store.Put(book.Product.ID, book)
	return s.store.Dispatch(book)
}

// OrderBook returns the latest snapshot for a product id.
func (s *Service) OrderBook(productID string) (model.OrderBook, error) {
	return s.store.Get(productID)
}

// BestBidOffer returns the top of book for a product as an owned
// value. It fails with service.ErrNotFound for an unseen product and
// ErrEmptyBook when either side of the snapshot is empty.
func (s *Service) BestBidOffer(productID string) (model.TopOfBook, error) {
	book, err := s.store.Get(productID)
	if err != nil {
		return model.TopOfBook{}, err
	}
	if len(book.Bids) == 0 || len(book.Offers) == 0 {
		return model.TopOfBook{}, ErrEmptyBook
	}
	return model.TopOfBook{
		Bid:   book.Bids[0],
		Offer: book.Offers[0],
	}, nil
}

// AddListener registers a downstream listener for snapshots.
func (s *Service) AddListener(l service.Listener[model.OrderBook]) {
	s.store.AddListener(l)
}
