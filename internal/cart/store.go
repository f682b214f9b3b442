// Package cart holds the per-session cart. Lines are kept in insertion
// order and keyed by product id.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

// Patch lists the line fields to replace. Nil fields are left unchanged.
type Patch struct {
	Quantity   *int
	Size       *domain.Size
	Dimensions *domain.Dimensions
}

// Store owns the cart lines of one session. Every mutation is a single
// read-modify-write of the stored list and is durable when it returns.
type Store struct {
	kv     repository.KeyValueStore
	scope  string
	logger *zap.Logger
}

func NewStore(kv repository.KeyValueStore, scope string, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		scope:  scope,
		logger: logger,
	}
}

// AddItem adds quantity units of product. An existing line for the product
// is incremented instead of duplicated. Quantities below 1 count as 1. A
// line may not grow past domain.MaxQuantity; such an add is refused and the
// cart is left unchanged.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int, size domain.Size, dims domain.Dimensions) error {
	quantity = clampLow(quantity)
	if quantity > domain.MaxQuantity {
		return quantityTooLarge()
	}

	return s.mutate(ctx, func(items []domain.CartItem) ([]domain.CartItem, error) {
		for i := range items {
			if items[i].ID == product.ID {
				if items[i].Quantity > domain.MaxQuantity-quantity {
					return nil, quantityTooLarge()
				}
				items[i].Quantity += quantity
				return items, nil
			}
		}

		size = size.Normalize()
		return append(items, domain.CartItem{
			ID:         product.ID,
			Name:       product.Name,
			Price:      product.Price,
			ImageURL:   product.ImageURL,
			Quantity:   quantity,
			Size:       size,
			Dimensions: dimensionsFor(size, dims),
		}), nil
	})
}

// UpdateItem replaces the patched fields of a line. Unknown ids are ignored.
// A quantity above domain.MaxQuantity is refused.
func (s *Store) UpdateItem(ctx context.Context, itemID string, patch Patch) error {
	if patch.Quantity != nil && *patch.Quantity > domain.MaxQuantity {
		return quantityTooLarge()
	}

	return s.mutate(ctx, func(items []domain.CartItem) ([]domain.CartItem, error) {
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			if patch.Quantity != nil {
				items[i].Quantity = clampLow(*patch.Quantity)
			}
			if patch.Size != nil {
				items[i].Size = patch.Size.Normalize()
			}
			if patch.Dimensions != nil {
				items[i].Dimensions = *patch.Dimensions
			}
			items[i].Dimensions = dimensionsFor(items[i].Size, items[i].Dimensions)
			break
		}
		return items, nil
	})
}

// RemoveItem deletes a line. Unknown ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	return s.mutate(ctx, func(items []domain.CartItem) ([]domain.CartItem, error) {
		out := items[:0]
		for _, item := range items {
			if item.ID != itemID {
				out = append(out, item)
			}
		}
		return out, nil
	})
}

// Snapshot returns a copy of the lines in insertion order.
func (s *Store) Snapshot(ctx context.Context) ([]domain.CartItem, error) {
	data, err := s.kv.Get(ctx, s.scope, repository.KeyCartItems)
	if err != nil {
		return nil, err
	}
	return s.decode(data), nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, func([]domain.CartItem) ([]domain.CartItem, error) {
		return []domain.CartItem{}, nil
	})
}

// RemoveCheckedOut takes the units of a checked-out snapshot out of the
// cart. Lines added or topped up after the snapshot was taken keep whatever
// the snapshot did not account for.
func (s *Store) RemoveCheckedOut(ctx context.Context, snapshot []domain.CartItem) error {
	taken := make(map[string]int, len(snapshot))
	for _, item := range snapshot {
		taken[item.ID] += item.Quantity
	}

	return s.mutate(ctx, func(items []domain.CartItem) ([]domain.CartItem, error) {
		out := items[:0]
		for _, item := range items {
			item.Quantity -= taken[item.ID]
			if item.Quantity > 0 {
				out = append(out, item)
			}
		}
		return out, nil
	})
}

func (s *Store) mutate(ctx context.Context, fn func([]domain.CartItem) ([]domain.CartItem, error)) error {
	return s.kv.Update(ctx, s.scope, repository.KeyCartItems, func(current []byte) ([]byte, error) {
		items, err := fn(s.decode(current))
		if err != nil {
			return nil, err
		}
		return json.Marshal(items)
	})
}

// decode never fails: a corrupted cart is logged and treated as empty, and
// the next write replaces it.
func (s *Store) decode(data []byte) []domain.CartItem {
	items, err := repository.DecodeList[domain.CartItem](data)
	if err != nil {
		s.logger.Warn("Discarding unreadable cart",
			zap.String("session", s.scope),
			zap.Error(err),
		)
		return []domain.CartItem{}
	}
	for i := range items {
		items[i].Quantity = min(clampLow(items[i].Quantity), domain.MaxQuantity)
		items[i].Size = items[i].Size.Normalize()
	}
	return items
}

func clampLow(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func quantityTooLarge() error {
	return &errors.ValidationError{
		Field:   "quantity",
		Message: fmt.Sprintf("a cart line holds at most %d units", domain.MaxQuantity),
	}
}

func dimensionsFor(size domain.Size, dims domain.Dimensions) domain.Dimensions {
	if size != domain.SizeCustom {
		return domain.Dimensions{}
	}
	return dims
}
