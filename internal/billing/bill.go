// Package billing folds a basket of SKU occurrences into a priced bill using
// the stock catalog and the multi-buy discount registry.
package billing

import (
	"github.com/noah-isme/backend-till/internal/catalog"
	"github.com/noah-isme/backend-till/internal/discount"
	"github.com/noah-isme/backend-till/internal/pricing"
)

// Line is the aggregated purchase record for a single known SKU. Prices are
// derived values, recomputed from the source fields on every request.
type Line struct {
	SKU  int64
	Qty  int
	Item catalog.StockItem
	Rule discount.Rule
}

// DiscountAmount computes the multi-buy discount earned by this line.
func (l Line) DiscountAmount() pricing.Money {
	return l.Rule.Amount(l.Qty)
}

// Price computes the net line total. Nothing is cached, so the result always
// reflects the current quantity and source fields.
func (l Line) Price() pricing.Money {
	return pricing.LineAmount(l.Qty, l.Item.UnitPrice, l.DiscountAmount())
}

// Bill holds one line per distinct known SKU, iterable in first-occurrence
// order of the basket.
type Bill struct {
	order []int64
	lines map[int64]*Line
}

// NewBill returns an empty bill accumulator.
func NewBill() *Bill {
	return &Bill{lines: make(map[int64]*Line)}
}

// upsert records one more occurrence of sku, replacing any prior entry with
// the re-resolved item and rule.
func (b *Bill) upsert(sku int64, item catalog.StockItem, rule discount.Rule) {
	if existing, ok := b.lines[sku]; ok {
		existing.Qty++
		existing.Item = item
		existing.Rule = rule
		return
	}
	b.lines[sku] = &Line{SKU: sku, Qty: 1, Item: item, Rule: rule}
	b.order = append(b.order, sku)
}

// Line returns the bill entry for sku, if present.
func (b *Bill) Line(sku int64) (Line, bool) {
	if b == nil {
		return Line{}, false
	}
	line, ok := b.lines[sku]
	if !ok {
		return Line{}, false
	}
	return *line, true
}

// Lines returns the bill entries in first-occurrence order.
func (b *Bill) Lines() []Line {
	if b == nil {
		return nil
	}
	out := make([]Line, 0, len(b.order))
	for _, sku := range b.order {
		out = append(out, *b.lines[sku])
	}
	return out
}

// Len reports the number of distinct SKUs on the bill.
func (b *Bill) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// Quantity reports the total number of billed occurrences across all lines.
func (b *Bill) Quantity() int {
	if b == nil {
		return 0
	}
	var total int
	for _, line := range b.lines {
		total += line.Qty
	}
	return total
}

// Total sums the derived line prices into the grand total. Summation order
// does not matter over the integer domain, but iteration follows line order
// to stay deterministic.
func (b *Bill) Total() pricing.Money {
	if b == nil {
		return 0
	}
	var total pricing.Money
	for _, sku := range b.order {
		total += b.lines[sku].Price()
	}
	return total
}
