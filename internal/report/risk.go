package report

import (
	"io"

	"github.com/shopspring/decimal"

	"main/internal/risk"
)

// RiskReport renders the full exposure table after every risk update:
// bucketed risk for the three curve buckets, then each product's own
// risk. It listens on the risk stage's historical listener set.
type RiskReport struct {
	t *table
}

// NewRiskReport creates a risk report writing to w.
func NewRiskReport(w io.Writer) *RiskReport {
	return &RiskReport{t: newTable(w,
		"key   frontend        belly           longend         detail")}
}

// OnAdd writes one row for the current exposure set.
func (r *RiskReport) OnAdd(exposures []risk.PV01) error {
	byBucket := map[risk.Bucket]decimal.Decimal{}
	detail := ""
	for _, pv := range exposures {
		b := risk.BucketOf(pv.Product.ID)
		byBucket[b] = byBucket[b].Add(pv.Risk())
		if detail != "" {
			detail += "  "
		}
		detail += pv.Product.ID + "=" + pv.Risk().StringFixed(6)
	}
	return r.t.writeRow("%-16s%-16s%-16s%s",
		byBucket[risk.FrontEnd].StringFixed(6),
		byBucket[risk.Belly].StringFixed(6),
		byBucket[risk.LongEnd].StringFixed(6),
		detail,
	)
}
