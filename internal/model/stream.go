package model

// QuoteLevel is one side of a published two-way quote.
type QuoteLevel struct {
	Price      Price
	VisibleQty Quantity
	HiddenQty  Quantity
	Side       PricingSide
}

// QuoteStream is a two-way market for one product. A newer stream for
// the same product supersedes the previous one.
type QuoteStream struct {
	Product Bond
	Bid     QuoteLevel
	Offer   QuoteLevel
}
