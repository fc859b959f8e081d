package report

import (
	"io"

	"main/internal/model"
)

// PositionReport renders one row per position update: the aggregate
// plus the per-book breakdown.
type PositionReport struct {
	t     *table
	books []string
}

// NewPositionReport creates a position report writing to w, with one
// column per named book.
func NewPositionReport(w io.Writer, books []string) *PositionReport {
	header := "key   cusip        coupon  maturity      aggregate  "
	for _, book := range books {
		header += padRight(book, 12)
	}
	return &PositionReport{t: newTable(w, header), books: books}
}

// OnAdd writes one row for the updated position.
func (r *PositionReport) OnAdd(pos *model.Position) error {
	args := []any{
		pos.Product().ID,
		pos.Product().Coupon,
		pos.Product().Maturity,
		int64(pos.Aggregate()),
	}
	format := "%-13s%-8.3f%-14s%-11d"
	for _, book := range r.books {
		format += "%-12d"
		args = append(args, int64(pos.Quantity(book)))
	}
	return r.t.writeRow(format, args...)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
