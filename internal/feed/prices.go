package feed

import (
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/pricing"
)

// PriceReader flows prices.txt into the pricing stage. Row layout:
// cusip, mid, spread, both in treasury fractional notation.
type PriceReader struct {
	svc *pricing.Service
}

// NewPriceReader creates a reader feeding svc.
func NewPriceReader(svc *pricing.Service) *PriceReader {
	return &PriceReader{svc: svc}
}

// ReadFile submits every price in the file.
func (r *PriceReader) ReadFile(path string) error {
	count := 0
	err := eachRecord(path, 3, func(rec []string) error {
		mid, err := model.ParseTreasuryPrice(rec[1])
		if err != nil {
			return errors.Wrapf(err, "price %s mid %q", rec[0], rec[1])
		}
		spread, err := model.ParseTreasuryPrice(rec[2])
		if err != nil {
			return errors.Wrapf(err, "price %s spread %q", rec[0], rec[2])
		}
		count++
		return r.svc.Ingest(model.ReferencePrice{
			Product:        bondFor(rec[0]),
			Mid:            mid,
			BidOfferSpread: spread,
		})
	})
	if err != nil {
		return err
	}
	logs.Infof("ingested %d prices from %s", count, path)
	return nil
}
