package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/catalog"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/pricing"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <text> [category]")
		fmt.Println("Example: go run cmd/find-product/main.go \"toughened\" glass")
		os.Exit(1)
	}

	text := os.Args[1]
	category := ""
	if len(os.Args) > 2 {
		category = os.Args[2]
	}

	products := catalog.DefaultProducts()
	matches := catalog.Search(catalog.Filter(products, category, ""), text)

	fmt.Printf("🔍 Searching for: %s\n\n", text)

	if len(matches) == 0 {
		fmt.Printf("❌ No products match %q\n", text)
		os.Exit(1)
	}

	calc := pricing.NewDefaultCalculator()
	for _, p := range matches {
		fmt.Printf("✅ %s  %s\n", p.ID, p.Name)
		fmt.Printf("   Category: %s / %s\n", p.Category, p.Subcategory)
		fmt.Printf("   Price: ₹%s (charged ₹%s per unit)\n", p.Price, calc.UnitPrice(p.Price))
		if len(p.Features) > 0 {
			fmt.Printf("   Features: %s\n", strings.Join(p.Features, "; "))
		}
		if len(p.Specifications) > 0 {
			specs, _ := json.MarshalIndent(p.Specifications, "   ", "  ")
			fmt.Printf("   Specifications: %s\n", specs)
		}
		fmt.Println()
	}

	fmt.Printf("%d product(s) found\n", len(matches))
}
