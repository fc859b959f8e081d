package streaming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/service"
)

func TestQuoterDerivesTwoWayQuote(t *testing.T) {
	svc := New()
	quoter := NewQuoter(svc, 0)

	mid, err := model.ParsePrice("100")
	require.NoError(t, err)
	spread, err := model.ParsePrice("0.5")
	require.NoError(t, err)

	bond := model.Bond{ID: "912828M72"}
	require.NoError(t, quoter.OnAdd(model.ReferencePrice{
		Product:        bond,
		Mid:            mid,
		BidOfferSpread: spread,
	}))

	qs, err := svc.Stream(bond.ID)
	require.NoError(t, err)
	assert.Equal(t, "99.750000000", qs.Bid.Price.String())
	assert.Equal(t, "100.250000000", qs.Offer.Price.String())
	assert.Equal(t, DefaultVisibleQty, qs.Bid.VisibleQty)
	assert.Equal(t, DefaultVisibleQty, qs.Offer.VisibleQty)
	assert.Equal(t, model.Quantity(0), qs.Bid.HiddenQty)
	assert.Equal(t, model.Quantity(0), qs.Offer.HiddenQty)
	assert.Equal(t, model.Bid, qs.Bid.Side)
	assert.Equal(t, model.Offer, qs.Offer.Side)
}

func TestPublishSupersedesAndNotifies(t *testing.T) {
	svc := New()
	bond := model.Bond{ID: "912828N22"}

	var published []model.QuoteStream
	svc.AddListener(service.ListenerFunc[model.QuoteStream](func(qs model.QuoteStream) error {
		published = append(published, qs)
		return nil
	}))

	first := model.QuoteStream{Product: bond, Bid: model.QuoteLevel{Price: model.PriceFromInt(99)}}
	second := model.QuoteStream{Product: bond, Bid: model.QuoteLevel{Price: model.PriceFromInt(98)}}
	require.NoError(t, svc.Publish(first))
	require.NoError(t, svc.Publish(second))

	qs, err := svc.Stream(bond.ID)
	require.NoError(t, err)
	assert.Equal(t, second, qs, "newer stream supersedes the old one")
	assert.Len(t, published, 2)
}
