package report

import (
	"io"

	"main/internal/model"
)

// StreamReport renders one row per published quote stream.
type StreamReport struct {
	t *table
}

// NewStreamReport creates a stream report writing to w.
func NewStreamReport(w io.Writer) *StreamReport {
	return &StreamReport{t: newTable(w,
		"key   cusip        bid            bid_vis     bid_hid     offer          offer_vis   offer_hid")}
}

// OnAdd writes one row for the published stream.
func (r *StreamReport) OnAdd(qs model.QuoteStream) error {
	return r.t.writeRow("%-13s%-15s%-12d%-12d%-15s%-12d%-12d",
		qs.Product.ID,
		qs.Bid.Price.String(),
		int64(qs.Bid.VisibleQty),
		int64(qs.Bid.HiddenQty),
		qs.Offer.Price.String(),
		int64(qs.Offer.VisibleQty),
		int64(qs.Offer.HiddenQty),
	)
}
