package model

import "testing"

func TestPositionAggregateStartsAtZero(t *testing.T) {
	pos := NewPosition(Bond{ID: "912828M72"})
	if got := pos.Aggregate(); got != 0 {
		t.Fatalf("empty position aggregate = %d, want 0", got)
	}
	if got := pos.Quantity("TRSY1"); got != 0 {
		t.Fatalf("unknown book quantity = %d, want 0", got)
	}
}

func TestPositionApplyTrade(t *testing.T) {
	bond := Bond{ID: "912828M72"}
	pos := NewPosition(bond)

	trades := []Trade{
		{Product: bond, TradeID: "T1", Book: "TRSY1", Quantity: 1_000_000, Side: SideBuy},
		{Product: bond, TradeID: "T2", Book: "TRSY2", Quantity: 3_000_000, Side: SideSell},
		{Product: bond, TradeID: "T3", Book: "TRSY1", Quantity: 2_000_000, Side: SideBuy},
	}
	var want Quantity
	for _, tr := range trades {
		pos.ApplyTrade(tr)
		want += tr.SignedQuantity()
	}

	if got := pos.Aggregate(); got != want {
		t.Fatalf("aggregate = %d, want %d", got, want)
	}
	if got := pos.Quantity("TRSY1"); got != 3_000_000 {
		t.Fatalf("TRSY1 = %d, want 3000000", got)
	}
	if got := pos.Quantity("TRSY2"); got != -3_000_000 {
		t.Fatalf("TRSY2 = %d, want -3000000", got)
	}
}
