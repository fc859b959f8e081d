package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/booking"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/service"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTradeReaderFlowsIntoPositions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trades.txt",
		"cusip,tradeid,book,quantity,side\n"+
			"912828M72,TR1,TRSY1,5000000,BUY\n"+
			"912828M72,TR2,TRSY2,2000000,SELL\n")

	bookingSvc := booking.New()
	positionSvc := position.New()
	bookingSvc.AddListener(positionSvc)

	require.NoError(t, NewTradeReader(bookingSvc).ReadFile(path))

	tr, err := bookingSvc.Trade("TR1")
	require.NoError(t, err)
	assert.Equal(t, "TRSY1", tr.Book)
	assert.Equal(t, 0.875, tr.Product.Coupon)

	pos, err := positionSvc.Position("912828M72")
	require.NoError(t, err)
	assert.Equal(t, model.Quantity(3_000_000), pos.Aggregate())
}

func TestPriceReaderParsesTreasuryNotation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prices.txt",
		"cusip,mid,spread\n"+
			"912828N22,100-160,0-002\n")

	svc := pricing.New()
	require.NoError(t, NewPriceReader(svc).ReadFile(path))

	p, err := svc.Price("912828N22")
	require.NoError(t, err)
	assert.Equal(t, 100.5, p.Mid.Float64())
	assert.Equal(t, 1.0/128, p.BidOfferSpread.Float64())
}

func TestMarketDataReaderBuildsFiveDeepBook(t *testing.T) {
	path := writeFile(t, t.TempDir(), "marketdata.txt",
		"cusip,mid\n"+
			"912828M98,100-000\n")

	svc := marketdata.New()
	require.NoError(t, NewMarketDataReader(svc).ReadFile(path))

	book, err := svc.OrderBook("912828M98")
	require.NoError(t, err)
	require.Len(t, book.Bids, 5)
	require.Len(t, book.Offers, 5)

	top, err := svc.BestBidOffer("912828M98")
	require.NoError(t, err)
	assert.Equal(t, 100-1.0/256, top.Bid.Price.Float64())
	assert.Equal(t, 100+1.0/256, top.Offer.Price.Float64())
	assert.Equal(t, model.Quantity(10_000_000), top.Offer.Quantity)
	assert.Equal(t, model.Quantity(50_000_000), book.Offers[4].Quantity)
}

func TestInquiryReaderSettlesInquiries(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inquiries.txt",
		"inquiryid,cusip,side,quantity,price\n"+
			"INQ1,912828M72,BUY,1000000,99\n")

	svc := inquiry.New(0)
	var notified []model.Inquiry
	svc.AddListener(service.ListenerFunc[model.Inquiry](func(inq model.Inquiry) error {
		notified = append(notified, inq)
		return nil
	}))

	require.NoError(t, NewInquiryReader(svc).ReadFile(path))

	inq, err := svc.Inquiry("INQ1")
	require.NoError(t, err)
	assert.Equal(t, model.InquiryDone, inq.State)
	assert.Equal(t, model.PriceFromInt(99), inq.Price)
	require.Len(t, notified, 1)
}

func TestGeneratorOutputIsParseable(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir, 1)
	gen.TradesPerProduct = 2
	gen.PricesPerProduct = 2
	gen.SnapshotsPerProduct = 2
	gen.InquiriesPerProduct = 2
	require.NoError(t, gen.WriteAll())

	bookingSvc := booking.New()
	require.NoError(t, NewTradeReader(bookingSvc).ReadFile(filepath.Join(dir, "trades.txt")))

	pricingSvc := pricing.New()
	require.NoError(t, NewPriceReader(pricingSvc).ReadFile(filepath.Join(dir, "prices.txt")))

	mdSvc := marketdata.New()
	require.NoError(t, NewMarketDataReader(mdSvc).ReadFile(filepath.Join(dir, "marketdata.txt")))

	inqSvc := inquiry.New(0)
	require.NoError(t, NewInquiryReader(inqSvc).ReadFile(filepath.Join(dir, "inquiries.txt")))

	for _, cusip := range Cusips() {
		_, err := pricingSvc.Price(cusip)
		assert.NoError(t, err, "price for %s", cusip)
		_, err = mdSvc.BestBidOffer(cusip)
		assert.NoError(t, err, "top of book for %s", cusip)
	}
}
