package model

// OrderType is the execution order kind.
type OrderType uint8

const (
	FOK OrderType = iota
	IOC
	Market
	Limit
	Stop
)

func (t OrderType) String() string {
	switch t {
	case FOK:
		return "FOK"
	case IOC:
		return "IOC"
	case Market:
		return "MARKET"
	case Limit:
		return "LIMIT"
	default:
		return "STOP"
	}
}

// ExecutionOrder is a simulated order placed against the market.
type ExecutionOrder struct {
	Product       Bond
	Side          PricingSide
	OrderID       string
	Type          OrderType
	Price         Price
	VisibleQty    Quantity
	HiddenQty     Quantity
	ParentOrderID string
	IsChild       bool
}
