// billcheck computes a bill for a basket file against a catalog and discount
// registry and prints the result as JSON. Useful for checking registry data
// before deploying it to the API.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/noah-isme/backend-till/internal/billing"
	"github.com/noah-isme/backend-till/internal/catalog"
	"github.com/noah-isme/backend-till/internal/discount"
)

type basketFile struct {
	Basket []int64 `json:"basket"`
}

func main() {
	catalogPath := flag.String("catalog", "catalog.json", "path to the catalog JSON document")
	discountsPath := flag.String("discounts", "", "path to the discount rules JSON document (optional)")
	basketPath := flag.String("basket", "basket.json", "path to the basket JSON document")
	flag.Parse()

	items, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var rules *discount.Registry
	if *discountsPath != "" {
		rules, err = discount.Load(*discountsPath)
		if err != nil {
			log.Fatalf("Failed to load discounts: %v", err)
		}
	} else {
		rules, _ = discount.NewRegistry(nil)
	}

	raw, err := os.ReadFile(*basketPath)
	if err != nil {
		log.Fatalf("Failed to read basket: %v", err)
	}
	var basket basketFile
	if err := json.Unmarshal(raw, &basket); err != nil {
		log.Fatalf("Failed to parse basket: %v", err)
	}

	warned := make(map[int64]bool)
	for _, sku := range basket.Basket {
		if warned[sku] {
			continue
		}
		warned[sku] = true
		if items.ItemOrUnknown(sku).Unknown() {
			log.Printf("SKU %d is not in the catalog and will be dropped", sku)
		}
	}

	svc := &billing.Service{Items: items, Discounts: rules}
	result, err := svc.Compute(basket.Basket)
	if err != nil {
		log.Fatalf("Failed to compute bill: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	if result.Dropped > 0 {
		log.Printf("Dropped %d basket occurrence(s) with unknown SKUs", result.Dropped)
	}
}
