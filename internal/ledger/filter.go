package ledger

import (
	"strings"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Filter returns the orders matching status and search text, keeping their
// ledger order. An empty status behaves like StatusAll. The search text is
// matched case-insensitively against the order id and item names.
func Filter(orders []domain.Order, status, search string) []domain.Order {
	q := strings.ToLower(search)
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && status != StatusAll && string(o.Status) != status {
			continue
		}
		if q != "" && !matches(o, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matches(o domain.Order, q string) bool {
	if strings.Contains(strings.ToLower(o.ID), q) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return true
		}
	}
	return false
}
