package feed

import (
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/marketdata"
	"main/internal/model"
)

const (
	bookDepth    = 5
	tick         = model.Price(1_000_000_000 / 256) // 1/256th of a point
	levelBaseQty = model.Quantity(10_000_000)
)

// MarketDataReader flows marketdata.txt into the market data stage.
// Row layout: cusip, mid in treasury fractional notation. Each row is
// expanded into a five-deep book around the mid: level i sits i ticks
// away at i times the base quantity, best level first.
type MarketDataReader struct {
	svc *marketdata.Service
}

// NewMarketDataReader creates a reader feeding svc.
func NewMarketDataReader(svc *marketdata.Service) *MarketDataReader {
	return &MarketDataReader{svc: svc}
}

// ReadFile submits every snapshot in the file.
func (r *MarketDataReader) ReadFile(path string) error {
	count := 0
	err := eachRecord(path, 2, func(rec []string) error {
		mid, err := model.ParseTreasuryPrice(rec[1])
		if err != nil {
			return errors.Wrapf(err, "marketdata %s mid %q", rec[0], rec[1])
		}
		count++
		return r.svc.Ingest(buildBook(bondFor(rec[0]), mid))
	})
	if err != nil {
		return err
	}
	logs.Infof("ingested %d order books from %s", count, path)
	return nil
}

func buildBook(product model.Bond, mid model.Price) model.OrderBook {
	book := model.OrderBook{
		Product: product,
		Bids:    make([]model.BookLevel, 0, bookDepth),
		Offers:  make([]model.BookLevel, 0, bookDepth),
	}
	for i := 1; i <= bookDepth; i++ {
		depth := tick * model.Price(i)
		qty := levelBaseQty * model.Quantity(i)
		book.Bids = append(book.Bids, model.BookLevel{
			Price:    mid.Sub(depth),
			Quantity: qty,
			Side:     model.Bid,
		})
		book.Offers = append(book.Offers, model.BookLevel{
			Price:    mid.Add(depth),
			Quantity: qty,
			Side:     model.Offer,
		})
	}
	return book
}
