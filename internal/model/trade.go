package model

// Trade is a booked trade against a particular book.
type Trade struct {
	Product  Bond
	TradeID  string
	Book     string
	Quantity Quantity
	Side     Side
}

// SignedQuantity is the trade quantity with buy positive and sell negative.
func (t Trade) SignedQuantity() Quantity {
	if t.Side == SideSell {
		return -t.Quantity
	}
	return t.Quantity
}
