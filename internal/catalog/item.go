package catalog

import "github.com/noah-isme/backend-till/internal/pricing"

// UnknownDescription marks the sentinel returned for SKUs absent from the catalog.
const UnknownDescription = "Unknown stock item"

// StockItem describes a single catalog product keyed by SKU. Prices are stored
// in minor currency units.
type StockItem struct {
	SKU         int64         `json:"sku" koanf:"sku" validate:"min=1"`
	Description string        `json:"description" koanf:"description" validate:"required"`
	UnitPrice   pricing.Money `json:"unitPrice" koanf:"unitPrice" validate:"min=0"`
}

// UnknownItem is the fallback returned when a SKU is not in the catalog.
// It is never added to a bill.
var UnknownItem = StockItem{Description: UnknownDescription, UnitPrice: 0}

// Unknown reports whether the item is the unknown-SKU sentinel.
func (i StockItem) Unknown() bool {
	return i.Description == UnknownDescription && i.UnitPrice == 0
}
