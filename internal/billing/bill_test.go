package billing_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-till/internal/billing"
	"github.com/noah-isme/backend-till/internal/catalog"
	"github.com/noah-isme/backend-till/internal/discount"
)

func newService(t *testing.T) *billing.Service {
	t.Helper()
	items, err := catalog.NewRegistry([]catalog.StockItem{
		{SKU: 670, Description: "Apples", UnitPrice: 194},
		{SKU: 1234, Description: "Sherry", UnitPrice: 1010},
		{SKU: 888, Description: "Biscuits", UnitPrice: 120},
	})
	require.NoError(t, err)
	rules, err := discount.NewRegistry([]discount.Rule{
		{SKU: 1234, ThresholdQty: 2, AmountPerThreshold: 250},
		{SKU: 888, ThresholdQty: 3, AmountPerThreshold: 60},
	})
	require.NoError(t, err)
	return &billing.Service{Items: items, Discounts: rules}
}

func TestAggregateCountsOccurrences(t *testing.T) {
	svc := newService(t)

	bill, err := svc.Aggregate([]int64{670, 1234, 670, 888, 670})
	require.NoError(t, err)
	require.Equal(t, 3, bill.Len())

	line, ok := bill.Line(670)
	require.True(t, ok)
	require.Equal(t, 3, line.Qty)

	line, ok = bill.Line(1234)
	require.True(t, ok)
	require.Equal(t, 1, line.Qty)

	require.Equal(t, 5, bill.Quantity())
}

func TestAggregateDropsUnknownSKUs(t *testing.T) {
	svc := newService(t)

	bill, err := svc.Aggregate([]int64{9999, 670, 9999})
	require.NoError(t, err)
	require.Equal(t, 1, bill.Len())

	_, ok := bill.Line(9999)
	require.False(t, ok)
	require.EqualValues(t, 194, bill.Total())
}

func TestAggregateEmptyBasket(t *testing.T) {
	svc := newService(t)

	bill, err := svc.Aggregate(nil)
	require.NoError(t, err)
	require.Equal(t, 0, bill.Len())
	require.EqualValues(t, 0, bill.Total())
}

func TestAggregateAllUnknown(t *testing.T) {
	svc := newService(t)

	bill, err := svc.Aggregate([]int64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 0, bill.Len())
	require.EqualValues(t, 0, bill.Total())
}

func TestMultiBuyScenarios(t *testing.T) {
	svc := newService(t)

	// Two apples, no discount rule.
	res, err := svc.Compute([]int64{670, 670})
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	require.EqualValues(t, 388, res.Lines[0].LineTotal)
	require.EqualValues(t, 388, res.GrandTotal)

	// Three sherry at 1010 with 250 off per two bought.
	res, err = svc.Compute([]int64{1234, 1234, 1234})
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	require.EqualValues(t, 250, res.Lines[0].DiscountAmount)
	require.EqualValues(t, 2780, res.Lines[0].LineTotal)
	require.EqualValues(t, 2780, res.GrandTotal)
}

func TestComputeResultShape(t *testing.T) {
	svc := newService(t)

	res, err := svc.Compute([]int64{1234, 670, 9999, 1234})
	require.NoError(t, err)
	require.Equal(t, 1, res.Dropped)
	require.Len(t, res.Lines, 2)

	// First-occurrence order is preserved.
	require.EqualValues(t, 1234, res.Lines[0].SKU)
	require.EqualValues(t, 670, res.Lines[1].SKU)

	require.Equal(t, "Sherry", res.Lines[0].Description)
	require.EqualValues(t, 1010, res.Lines[0].UnitPrice)
	require.EqualValues(t, 250, res.Lines[0].DiscountAmount)
	require.EqualValues(t, 2*1010-250, res.Lines[0].LineTotal)
	require.EqualValues(t, res.Lines[0].LineTotal+res.Lines[1].LineTotal, res.GrandTotal)
}

func TestAggregateIdempotent(t *testing.T) {
	svc := newService(t)
	basket := []int64{670, 1234, 888, 888, 670, 9999, 888}

	first, err := svc.Compute(basket)
	require.NoError(t, err)
	second, err := svc.Compute(basket)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAggregateOrderIndependent(t *testing.T) {
	svc := newService(t)
	basket := []int64{670, 1234, 888, 888, 670, 888, 1234, 670}

	want, err := svc.Compute(basket)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]int64(nil), basket...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := svc.Compute(shuffled)
		require.NoError(t, err)

		// Quantities, prices, and the grand total must not depend on basket order.
		require.Equal(t, want.GrandTotal, got.GrandTotal)
		require.ElementsMatch(t, want.Lines, got.Lines)
	}
}

func TestPriceRecomputedFromSourceFields(t *testing.T) {
	items, err := catalog.NewRegistry([]catalog.StockItem{{SKU: 1234, Description: "Sherry", UnitPrice: 1010}})
	require.NoError(t, err)
	rules, err := discount.NewRegistry([]discount.Rule{{SKU: 1234, ThresholdQty: 2, AmountPerThreshold: 250}})
	require.NoError(t, err)
	svc := &billing.Service{Items: items, Discounts: rules}

	bill, err := svc.Aggregate([]int64{1234})
	require.NoError(t, err)
	line, ok := bill.Line(1234)
	require.True(t, ok)
	require.EqualValues(t, 1010, line.Price())

	// A mutated copy reprices from its own fields; nothing is cached.
	line.Qty = 3
	require.EqualValues(t, 250, line.DiscountAmount())
	require.EqualValues(t, 2780, line.Price())
}
