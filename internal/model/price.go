package model

// ReferencePrice is a mid price with a symmetric bid/offer spread.
type ReferencePrice struct {
	Product        Bond
	Mid            Price
	BidOfferSpread Price
}
