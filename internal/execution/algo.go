package execution

import (
	"strconv"

	"main/internal/marketdata"
	"main/internal/model"
)

// Algo simulates a steady two-sided execution stream from one-sided
// snapshots by alternating the aggressed side per product. The side
// map is the only persistent memory besides the execution store:
// nextSide[id] is the side to aggress on the next snapshot for id.
// A BID entry crosses the best offer, an OFFER entry the best bid.
type Algo struct {
	svc      *Service
	nextSide map[string]model.PricingSide
	orderNum uint64
}

// NewAlgo creates an algo stage executing into svc.
func NewAlgo(svc *Service) *Algo {
	return &Algo{
		svc:      svc,
		nextSide: make(map[string]model.PricingSide),
		orderNum: 1,
	}
}

// OnAdd generates and executes one market order for the snapshot.
// A product seen for the first time crosses the best offer. No price
// or quantity validation happens beyond copying the crossed level.
func (a *Algo) OnAdd(book model.OrderBook) error {
	if len(book.Bids) == 0 || len(book.Offers) == 0 {
		return marketdata.ErrEmptyBook
	}

	id := book.Product.ID
	side, seen := a.nextSide[id]
	if !seen {
		side = model.Bid
	}

	crossed := book.Offers[0]
	if side == model.Offer {
		crossed = book.Bids[0]
	}

	order := model.ExecutionOrder{
		Product:       book.Product,
		Side:          side,
		OrderID:       "T" + strconv.FormatUint(a.orderNum, 10),
		Type:          model.Market,
		Price:         crossed.Price,
		VisibleQty:    crossed.Quantity,
		ParentOrderID: "NULL",
	}
	a.orderNum++
	a.nextSide[id] = side.Flip()

	return a.svc.Execute(order)
}
