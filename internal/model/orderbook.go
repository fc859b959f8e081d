package model

// BookLevel is a resting price/quantity pair on one side of the book.
type BookLevel struct {
	Price    Price
	Quantity Quantity
	Side     PricingSide
}

// OrderBook is a snapshot of the bid and offer stacks for one product,
// best level first.
type OrderBook struct {
	Product Bond
	Bids    []BookLevel
	Offers  []BookLevel
}

// TopOfBook is the best bid and best offer, returned by value.
type TopOfBook struct {
	Bid   BookLevel
	Offer BookLevel
}
