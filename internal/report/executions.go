package report

import (
	"io"

	"main/internal/model"
)

// ExecutionReport renders one row per executed order.
type ExecutionReport struct {
	t *table
}

// NewExecutionReport creates an execution report writing to w.
func NewExecutionReport(w io.Writer) *ExecutionReport {
	return &ExecutionReport{t: newTable(w,
		"key   cusip        order   side   type    price          visible     hidden      parent  child")}
}

// OnAdd writes one row for the executed order.
func (r *ExecutionReport) OnAdd(order model.ExecutionOrder) error {
	return r.t.writeRow("%-13s%-8s%-7s%-8s%-15s%-12d%-12d%-8s%-6t",
		order.Product.ID,
		order.OrderID,
		order.Side.String(),
		order.Type.String(),
		order.Price.String(),
		int64(order.VisibleQty),
		int64(order.HiddenQty),
		order.ParentOrderID,
		order.IsChild,
	)
}
