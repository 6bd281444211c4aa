package catalog

import (
	"fmt"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/backend-till/internal/registry"
)

// Registry is the read-only stock catalog keyed by SKU. It is loaded once and
// never mutated for the lifetime of any bill computation.
type Registry struct {
	table *registry.Table[int64, StockItem]
	order []int64
}

// NewRegistry builds a catalog from the provided items. Duplicate SKUs are
// rejected so the catalog holds exactly one entry per SKU.
func NewRegistry(items []StockItem) (*Registry, error) {
	values := make(map[int64]StockItem, len(items))
	order := make([]int64, 0, len(items))
	for _, item := range items {
		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("catalog: invalid item sku=%d: %w", item.SKU, err)
		}
		if _, exists := values[item.SKU]; exists {
			return nil, fmt.Errorf("catalog: duplicate sku %d", item.SKU)
		}
		values[item.SKU] = item
		order = append(order, item.SKU)
	}
	return &Registry{table: registry.New(values, UnknownItem), order: order}, nil
}

// Item returns the catalog entry for sku and whether the SKU is known.
func (r *Registry) Item(sku int64) (StockItem, bool) {
	if r == nil {
		return UnknownItem, false
	}
	return r.table.Get(sku)
}

// ItemOrUnknown returns the catalog entry for sku, or the unknown-item
// sentinel when absent. It never fails.
func (r *Registry) ItemOrUnknown(sku int64) StockItem {
	if r == nil {
		return UnknownItem
	}
	return r.table.GetOrDefault(sku)
}

// Items lists the catalog entries in load order.
func (r *Registry) Items() []StockItem {
	if r == nil {
		return nil
	}
	items := make([]StockItem, 0, len(r.order))
	for _, sku := range r.order {
		items = append(items, r.table.GetOrDefault(sku))
	}
	return items
}

// Len reports the number of catalog entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.table.Len()
}

// catalogFile mirrors the on-disk catalog document shape.
type catalogFile struct {
	Items []StockItem `koanf:"items"`
}

// Load reads a catalog JSON document from path and builds the registry.
func Load(path string) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	var doc catalogFile
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return NewRegistry(doc.Items)
}
