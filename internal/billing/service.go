package billing

import (
	"errors"

	"github.com/noah-isme/backend-till/internal/catalog"
	"github.com/noah-isme/backend-till/internal/discount"
	"github.com/noah-isme/backend-till/internal/pricing"
)

// Service computes bills from basket snapshots against immutable registries.
// Computations are synchronous and isolated: each produces its own private
// bill accumulator, so concurrent use over the same registries is safe.
type Service struct {
	Items     *catalog.Registry
	Discounts *discount.Registry
}

// LineResult is the per-line output consumed by the presentation layer.
// Values are integer minor units and plain text only.
type LineResult struct {
	SKU            int64         `json:"sku"`
	Qty            int           `json:"qty"`
	Description    string        `json:"description"`
	UnitPrice      pricing.Money `json:"unitPrice"`
	DiscountAmount pricing.Money `json:"discountAmount"`
	LineTotal      pricing.Money `json:"lineTotal"`
}

// Result is the computed bill: one entry per distinct known SKU in
// first-occurrence order, plus the grand total.
type Result struct {
	Lines      []LineResult  `json:"lines"`
	GrandTotal pricing.Money `json:"grandTotal"`
	// Dropped is observability detail, not part of the bill payload.
	Dropped int `json:"-"`
}

// Aggregate folds the basket into a bill. Each occurrence re-resolves its
// item and rule; occurrences of SKUs absent from the catalog are silently
// dropped, which is the intended domain policy rather than an error.
func (s *Service) Aggregate(basket []int64) (*Bill, error) {
	if s == nil || s.Items == nil {
		return nil, errors.New("billing service not configured")
	}
	bill := NewBill()
	for _, sku := range basket {
		item, known := s.Items.Item(sku)
		if !known {
			continue
		}
		rule := s.Discounts.RuleOrDefault(sku)
		bill.upsert(sku, item, rule)
	}
	return bill, nil
}

// Compute aggregates the basket and renders the bill result. Dropped reports
// how many occurrences referenced unknown SKUs.
func (s *Service) Compute(basket []int64) (Result, error) {
	bill, err := s.Aggregate(basket)
	if err != nil {
		return Result{}, err
	}
	lines := bill.Lines()
	out := Result{
		Lines:   make([]LineResult, 0, len(lines)),
		Dropped: len(basket) - bill.Quantity(),
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, LineResult{
			SKU:            line.SKU,
			Qty:            line.Qty,
			Description:    line.Item.Description,
			UnitPrice:      line.Item.UnitPrice,
			DiscountAmount: line.DiscountAmount(),
			LineTotal:      line.Price(),
		})
	}
	out.GrandTotal = bill.Total()
	return out, nil
}
