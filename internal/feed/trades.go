package feed

import (
	"strconv"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/booking"
	"main/internal/model"
)

// TradeReader flows trades.txt into the booking stage. Row layout:
// cusip, trade id, book, quantity, side.
type TradeReader struct {
	svc *booking.Service
}

// NewTradeReader creates a reader feeding svc.
func NewTradeReader(svc *booking.Service) *TradeReader {
	return &TradeReader{svc: svc}
}

// ReadFile books every trade in the file.
func (r *TradeReader) ReadFile(path string) error {
	count := 0
	err := eachRecord(path, 5, func(rec []string) error {
		qty, err := strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "trade %s quantity", rec[1])
		}
		t := model.Trade{
			Product:  bondFor(rec[0]),
			TradeID:  rec[1],
			Book:     rec[2],
			Quantity: model.Quantity(qty),
			Side:     model.ParseSide(rec[4]),
		}
		count++
		return r.svc.Book(t)
	})
	if err != nil {
		return err
	}
	logs.Infof("booked %d trades from %s", count, path)
	return nil
}
