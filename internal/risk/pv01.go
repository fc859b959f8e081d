package risk

import (
	"github.com/shopspring/decimal"

	"main/internal/model"
)

// PV01 is the risk exposure of one product: a fixed per-unit
// sensitivity and the running quantity it applies to. Stored records
// are replaced wholesale on update.
type PV01 struct {
	Product     model.Bond
	Sensitivity decimal.Decimal
	Quantity    model.Quantity
}

// Risk returns sensitivity multiplied by quantity.
func (p PV01) Risk() decimal.Decimal {
	return p.Sensitivity.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Table maps product id to its fixed per-unit PV01 sensitivity.
type Table map[string]decimal.Decimal

// Sensitivity returns the per-unit sensitivity for a product id,
// zero for products not in the table.
func (t Table) Sensitivity(productID string) decimal.Decimal {
	return t[productID]
}

// DefaultTable returns the sensitivity table for the six on-the-run
// treasuries the simulator trades.
func DefaultTable() Table {
	return Table{
		"912828M72": decimal.RequireFromString("0.01974732"),
		"912828N22": decimal.RequireFromString("0.029349458"),
		"912828M98": decimal.RequireFromString("0.047720509"),
		"912828M80": decimal.RequireFromString("0.06495714"),
		"912828M56": decimal.RequireFromString("0.089254107"),
		"912810RP5": decimal.RequireFromString("0.198018642"),
	}
}
