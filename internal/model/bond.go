package model

// Bond is a tradeable fixed-income security identified by CUSIP.
type Bond struct {
	ID       string
	Coupon   float64
	Maturity string
}

// Side is the direction of a trade or inquiry.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideSell {
		return "SELL"
	}
	return "BUY"
}

// ParseSide maps "BUY"/"SELL" (first letter is enough) to a Side.
func ParseSide(s string) Side {
	if len(s) > 0 && (s[0] == 'S' || s[0] == 's') {
		return SideSell
	}
	return SideBuy
}

// PricingSide is the side of a quote or aggressed book level.
type PricingSide uint8

const (
	Bid PricingSide = iota
	Offer
)

func (s PricingSide) String() string {
	if s == Offer {
		return "OFFER"
	}
	return "BID"
}

// Flip returns the opposite pricing side.
func (s PricingSide) Flip() PricingSide {
	if s == Bid {
		return Offer
	}
	return Bid
}
