package feed

import (
	"strconv"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/inquiry"
	"main/internal/model"
)

// InquiryReader flows inquiries.txt into the inquiry stage. Row
// layout: inquiry id, cusip, side, quantity, price. Each RECEIVED
// submission is immediately answered by quoting the customer's price
// back, which settles the inquiry as DONE.
type InquiryReader struct {
	svc *inquiry.Service
}

// NewInquiryReader creates a reader feeding svc.
func NewInquiryReader(svc *inquiry.Service) *InquiryReader {
	return &InquiryReader{svc: svc}
}

// ReadFile submits every inquiry in the file and drives each through
// the quote round trip.
func (r *InquiryReader) ReadFile(path string) error {
	count := 0
	err := eachRecord(path, 5, func(rec []string) error {
		qty, err := strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "inquiry %s quantity", rec[0])
		}
		price, err := model.ParsePrice(rec[4])
		if err != nil {
			return errors.Wrapf(err, "inquiry %s price %q", rec[0], rec[4])
		}
		inq := model.Inquiry{
			InquiryID: rec[0],
			Product:   bondFor(rec[1]),
			Side:      model.ParseSide(rec[2]),
			Quantity:  model.Quantity(qty),
			Price:     price,
			State:     model.InquiryReceived,
		}
		if err := r.svc.Ingest(inq); err != nil {
			return err
		}
		count++
		return r.svc.SendQuote(inq.InquiryID, price)
	})
	if err != nil {
		return err
	}
	logs.Infof("settled %d inquiries from %s", count, path)
	return nil
}
