package llm

import (
	"fmt"
	"sort"
	"strings"
)

// BusinessContext is what the assistant knows about an owner's shop
type BusinessContext struct {
	BusinessName string
	Currency     string
	Inventory    []InventoryLine
	Sales        *SalesSummary
}

// InventoryLine is one stocked item
type InventoryLine struct {
	Name   string
	Stock  int
	Price  float64
	Fields map[string]string
}

// SalesSummary is the current month at a glance
type SalesSummary struct {
	Period        string
	Revenue       float64
	Profit        float64
	SalesCount    int64
	AverageOrder  float64
	TopProducts   []ProductLine
	LowStockCount int
}

// ProductLine is a best seller
type ProductLine struct {
	Name     string
	Quantity int64
	Revenue  float64
}

// BuildSystemPrompt renders the business context into assistant instructions
func BuildSystemPrompt(bc *BusinessContext) string {
	var sb strings.Builder

	name := bc.BusinessName
	if name == "" {
		name = "a small business"
	}
	currency := bc.Currency
	if currency == "" {
		currency = "Rs."
	}

	sb.WriteString(fmt.Sprintf("You are the business assistant for %s.\n", name))
	sb.WriteString("You help the owner understand their inventory, sales and customers.\n\n")

	if bc.Sales != nil {
		s := bc.Sales
		sb.WriteString(fmt.Sprintf("=== SALES (%s) ===\n", strings.ToUpper(s.Period)))
		sb.WriteString(fmt.Sprintf("Revenue: %s %.2f\n", currency, s.Revenue))
		sb.WriteString(fmt.Sprintf("Profit: %s %.2f\n", currency, s.Profit))
		sb.WriteString(fmt.Sprintf("Sales: %d (average %s %.2f)\n", s.SalesCount, currency, s.AverageOrder))
		if len(s.TopProducts) > 0 {
			sb.WriteString("Top products:\n")
			for _, p := range s.TopProducts {
				sb.WriteString(fmt.Sprintf("- %s: %d sold, %s %.2f\n", p.Name, p.Quantity, currency, p.Revenue))
			}
		}
		if s.LowStockCount > 0 {
			sb.WriteString(fmt.Sprintf("Items running low: %d\n", s.LowStockCount))
		}
		sb.WriteString("\n")
	}

	if len(bc.Inventory) > 0 {
		sb.WriteString("=== INVENTORY ===\n")
		for _, item := range bc.Inventory {
			sb.WriteString(fmt.Sprintf("- %s: %d in stock @ %s %.2f", item.Name, item.Stock, currency, item.Price))
			if extra := formatFields(item.Fields); extra != "" {
				sb.WriteString(" (" + extra + ")")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("The inventory is currently empty.\n\n")
	}

	sb.WriteString("Instructions:\n")
	sb.WriteString("- Answer concisely and professionally\n")
	sb.WriteString("- Use only the figures above; say so when the data does not cover a question\n")
	sb.WriteString("- Do not invent products, prices or customers\n")

	return sb.String()
}

// formatFields renders custom fields in a stable order
func formatFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, ", ")
}
