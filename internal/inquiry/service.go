// Package inquiry runs the customer-inquiry negotiation state machine.
//
// The desk flow is: the customer submits RECEIVED, the desk quotes a
// price (SendQuote re-submits the stored inquiry as QUOTED), and the
// QUOTED round-trip settles the inquiry as DONE. The lifecycle never
// regresses; DONE, REJECTED and CUSTOMER_REJECTED are terminal.
package inquiry

import (
	"errors"
	"fmt"

	"main/internal/model"
	"main/internal/service"
)

var ErrInvalidTransition = errors.New("inquiry: invalid state transition")

// DefaultQuotePrice is the fixed price quoted back on every received
// inquiry.
var DefaultQuotePrice = model.PriceFromInt(100)

// Service stores inquiries keyed by inquiry id and drives their state
// transitions.
type Service struct {
	store      *service.Store[string, model.Inquiry]
	quotePrice model.Price
}

// New creates an inquiry service quoting at the given price. A zero
// price falls back to DefaultQuotePrice.
func New(quotePrice model.Price) *Service {
	if quotePrice == 0 {
		quotePrice = DefaultQuotePrice
	}
	return &Service{
		store:      service.NewStore[string, model.Inquiry](),
		quotePrice: quotePrice,
	}
}

// Ingest applies one inquiry message.
//
// RECEIVED stores the inquiry with its price replaced by the quote
// price; no listeners fire. QUOTED for an id already on record settles
// the inquiry as DONE at the incoming price and fans it out — the only
// notification in the lifecycle. Anything else is an invalid
// transition surfaced to the caller.
func (s *Service) Ingest(inq model.Inquiry) error {
	switch inq.State {
	case model.InquiryReceived:
		if s.store.Has(inq.InquiryID) {
			return fmt.Errorf("%w: %s resubmitted as RECEIVED", ErrInvalidTransition, inq.InquiryID)
		}
		inq.Price = s.quotePrice
		s.store.Put(inq.InquiryID, inq)
		return nil

	case model.InquiryQuoted:
		stored, err := s.store.Get(inq.InquiryID)
		if err != nil {
			return fmt.Errorf("%w: QUOTED for unknown inquiry %s", ErrInvalidTransition, inq.InquiryID)
		}
		if stored.State != model.InquiryReceived {
			return fmt.Errorf("%w: %s is %s", ErrInvalidTransition, inq.InquiryID, stored.State)
		}
		stored.State = model.InquiryDone
		stored.Price = inq.Price
		s.store.Put(stored.InquiryID, stored)
		return s.store.Dispatch(stored)

	default:
		return fmt.Errorf("%w: unexpected inbound state %s", ErrInvalidTransition, inq.State)
	}
}

// SendQuote re-submits a stored RECEIVED inquiry as QUOTED at price,
// driving it to DONE.
func (s *Service) SendQuote(inquiryID string, price model.Price) error {
	stored, err := s.store.Get(inquiryID)
	if err != nil {
		return err
	}
	if stored.State != model.InquiryReceived {
		return fmt.Errorf("%w: cannot quote %s in %s", ErrInvalidTransition, inquiryID, stored.State)
	}
	stored.State = model.InquiryQuoted
	stored.Price = price
	return s.Ingest(stored)
}

// RejectInquiry moves a stored non-terminal inquiry to REJECTED and
// fans it out.
func (s *Service) RejectInquiry(inquiryID string) error {
	stored, err := s.store.Get(inquiryID)
	if err != nil {
		return err
	}
	if stored.State.Terminal() {
		return fmt.Errorf("%w: %s already %s", ErrInvalidTransition, inquiryID, stored.State)
	}
	stored.State = model.InquiryRejected
	s.store.Put(inquiryID, stored)
	return s.store.Dispatch(stored)
}

// Inquiry returns the stored inquiry by inquiry id.
func (s *Service) Inquiry(inquiryID string) (model.Inquiry, error) {
	return s.store.Get(inquiryID)
}

// AddListener registers a downstream listener for settled inquiries.
func (s *Service) AddListener(l service.Listener[model.Inquiry]) {
	s.store.AddListener(l)
}
