package model

// Position tracks the signed net quantity of one product per book.
// It is the only mutable entity in the pipeline; the owning stage
// mutates it in place and hands references to listeners for the
// duration of the notification call.
type Position struct {
	product Bond
	books   map[string]Quantity
}

// NewPosition creates an empty position for a product.
func NewPosition(product Bond) *Position {
	return &Position{
		product: product,
		books:   make(map[string]Quantity),
	}
}

// Product returns the product this position is for.
func (p *Position) Product() Bond { return p.product }

// Quantity returns the signed net quantity in one book, zero if the
// book has never traded.
func (p *Position) Quantity(book string) Quantity {
	return p.books[book]
}

// Aggregate returns the net quantity summed across all books. A
// position with no book entries reports zero.
func (p *Position) Aggregate() Quantity {
	var total Quantity
	for _, qty := range p.books {
		total += qty
	}
	return total
}

// ApplyTrade adds the trade's signed quantity to its book.
func (p *Position) ApplyTrade(t Trade) {
	p.books[t.Book] += t.SignedQuantity()
}

// Books returns the number of books with entries.
func (p *Position) Books() int { return len(p.books) }
