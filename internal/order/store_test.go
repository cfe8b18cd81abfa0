package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/windsor-dist/storefront-api/internal/order"
	"github.com/windsor-dist/storefront-api/internal/pricing"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
}

func sampleItems() []order.Item {
	return []order.Item{{
		ID:        "item-1",
		ProductID: "prod-001",
		Snapshot: order.ItemSnapshot{
			Name:         "Signature Sliding Door",
			SKU:          "WIN-SLD-8842",
			PriceAtOrder: 22680,
		},
		Quantity:   1,
		UnitPrice:  22680,
		TotalPrice: 22680,
	}}
}

func sampleSummary() pricing.Summary {
	return pricing.Summary{Subtotal: 22680, VAT: 1588, Total: 24268, ItemCount: 1, TotalQuantity: 1}
}

func TestCreateAssignsSequentialOrderNumbers(t *testing.T) {
	st := order.NewStore().WithNow(fixedNow)

	first := st.Create(sampleItems(), sampleSummary(), "")
	second := st.Create(sampleItems(), sampleSummary(), "")

	require.Equal(t, "ORD-2026-001", first.OrderNumber)
	require.Equal(t, "ORD-2026-002", second.OrderNumber)
	require.Equal(t, order.StatusPendingPayment, first.Status)
	require.Len(t, first.Timeline, 1)
	require.Equal(t, order.StatusPendingPayment, first.Timeline[0].Status)
}

func TestGetUnknownOrder(t *testing.T) {
	st := order.NewStore()
	_, err := st.Get("missing")
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	ts := fixedNow()
	st := order.NewStore().WithNow(func() time.Time {
		ts = ts.Add(time.Minute)
		return ts
	})

	st.Create(sampleItems(), sampleSummary(), "")
	st.Create(sampleItems(), sampleSummary(), "")
	newest := st.Create(sampleItems(), sampleSummary(), "")

	orders := st.List()
	require.Len(t, orders, 3)
	require.Equal(t, newest.ID, orders[0].ID)
}

func TestAdvanceFollowsFlow(t *testing.T) {
	st := order.NewStore().WithNow(fixedNow)
	o := st.Create(sampleItems(), sampleSummary(), "")

	advanced, err := st.Advance(o.ID, order.StatusPaymentConfirmed, "payment received")
	require.NoError(t, err)
	require.Equal(t, order.StatusPaymentConfirmed, advanced.Status)
	require.Len(t, advanced.Timeline, 2)
	require.Equal(t, "payment received", advanced.Timeline[1].Description)

	_, err = st.Advance(o.ID, order.StatusDelivered, "")
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to order.Status
		want     bool
	}{
		{order.StatusPendingPayment, order.StatusPaymentConfirmed, true},
		{order.StatusPendingPayment, order.StatusCancelled, true},
		{order.StatusPendingPayment, order.StatusShipped, false},
		{order.StatusProcessing, order.StatusManufacturing, true},
		{order.StatusManufacturing, order.StatusQualityCheck, true},
		{order.StatusQualityCheck, order.StatusManufacturing, true},
		{order.StatusShipped, order.StatusDelivered, true},
		{order.StatusDelivered, order.StatusRefunded, true},
		{order.StatusCompleted, order.StatusPendingPayment, false},
		{order.StatusCancelled, order.StatusProcessing, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, order.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
