package report

import (
	"io"

	"main/internal/model"
)

// InquiryReport renders one row per settled inquiry.
type InquiryReport struct {
	t *table
}

// NewInquiryReport creates an inquiry report writing to w.
func NewInquiryReport(w io.Writer) *InquiryReport {
	return &InquiryReport{t: newTable(w,
		"key   inquiry  cusip        side   quantity    price          state")}
}

// OnAdd writes one row for the inquiry.
func (r *InquiryReport) OnAdd(inq model.Inquiry) error {
	return r.t.writeRow("%-9s%-13s%-7s%-12d%-15s%s",
		inq.InquiryID,
		inq.Product.ID,
		inq.Side.String(),
		int64(inq.Quantity),
		inq.Price.String(),
		inq.State.String(),
	)
}
