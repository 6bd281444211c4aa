// Package discount holds multi-buy discount rules: a fixed amount off for
// every complete multiple of a threshold quantity purchased.
package discount

import "github.com/noah-isme/backend-till/internal/pricing"

// Rule captures a multi-buy discount for a single SKU. At most one rule
// exists per SKU; absence of a rule implies NoDiscount.
type Rule struct {
	SKU                int64         `json:"sku" koanf:"sku" validate:"min=1"`
	ThresholdQty       int           `json:"thresholdQty" koanf:"thresholdQty" validate:"min=1"`
	AmountPerThreshold pricing.Money `json:"amountPerThreshold" koanf:"amountPerThreshold" validate:"min=0"`
}

// NoDiscount is the sentinel rule applied to SKUs without a registered
// discount. Its threshold of 1 keeps the pricing arithmetic total.
var NoDiscount = Rule{ThresholdQty: 1, AmountPerThreshold: 0}

// Amount computes the discount earned by qty units under this rule.
func (r Rule) Amount(qty int) pricing.Money {
	return pricing.DiscountAmount(qty, r.ThresholdQty, r.AmountPerThreshold)
}
