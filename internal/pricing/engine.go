package pricing

// Money represents a monetary value stored in minor units.
type Money = int64

// DiscountAmount calculates the multi-buy discount earned by qty units under a
// rule granting amountPerThreshold off for every complete thresholdQty bought.
// Integer floor division: a remainder below the threshold earns nothing.
// A threshold below 1 is treated as the no-discount rule.
func DiscountAmount(qty int, thresholdQty int, amountPerThreshold Money) Money {
	if qty <= 0 || thresholdQty < 1 {
		return 0
	}
	return Money(qty/thresholdQty) * amountPerThreshold
}

// LineAmount calculates the net price of a line given its quantity, unit price,
// and an already computed discount. The discount is clamped to the gross amount
// so a line total never goes negative.
func LineAmount(qty int, unitPrice Money, discount Money) Money {
	if qty <= 0 {
		return 0
	}
	gross := Money(qty) * unitPrice
	if discount > gross {
		discount = gross
	}
	if discount < 0 {
		discount = 0
	}
	return gross - discount
}
