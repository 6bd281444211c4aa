package pricing

import "testing"

func TestDiscountAmountThresholding(t *testing.T) {
	cases := []struct {
		name      string
		qty       int
		threshold int
		amount    Money
		want      Money
	}{
		{"below threshold earns nothing", 1, 2, 250, 0},
		{"exact threshold", 2, 2, 250, 250},
		{"remainder earns nothing", 3, 2, 250, 250},
		{"two complete multiples", 4, 2, 250, 500},
		{"threshold one applies per unit", 3, 1, 10, 30},
		{"zero amount", 5, 2, 0, 0},
		{"zero qty", 0, 2, 250, 0},
		{"invalid threshold treated as no discount", 5, 0, 250, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountAmount(tc.qty, tc.threshold, tc.amount)
			if got != tc.want {
				t.Fatalf("expected discount %d, got %d", tc.want, got)
			}
		})
	}
}

func TestLineAmount(t *testing.T) {
	if got := LineAmount(2, 194, 0); got != 388 {
		t.Fatalf("expected 388, got %d", got)
	}
	if got := LineAmount(3, 1010, 250); got != 2780 {
		t.Fatalf("expected 2780, got %d", got)
	}
}

func TestLineAmountClampsExcessDiscount(t *testing.T) {
	if got := LineAmount(1, 100, 500); got != 0 {
		t.Fatalf("expected clamped line total 0, got %d", got)
	}
	if got := LineAmount(2, 50, -10); got != 100 {
		t.Fatalf("expected negative discount ignored, got %d", got)
	}
}
