package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/cart"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/catalog"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/pricing"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

type CartService struct {
	products catalog.Provider
	kv       repository.KeyValueStore
	calc     *pricing.Calculator
	logger   *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(products catalog.Provider, kv repository.KeyValueStore, calc *pricing.Calculator, logger *zap.Logger) *CartService {
	return &CartService{
		products: products,
		kv:       kv,
		calc:     calc,
		logger:   logger,
	}
}

func (s *CartService) store(sessionID string) *cart.Store {
	return cart.NewStore(s.kv, sessionID, s.logger)
}

// Get returns the session's cart with totals
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	items, err := s.store(sessionID).Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.calc.Quote(items)
	if err != nil {
		return nil, err
	}
	return &CartView{Items: items, Totals: totals}, nil
}

// AddItem looks the product up in the catalog and adds it to the cart.
// Quantities above domain.MaxQuantity, alone or added to an existing line,
// are refused.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req AddCartItemRequest) (*CartView, error) {
	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.Availability {
		return nil, &errors.ValidationError{Field: "product_id", Message: "product is out of stock"}
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := s.store(sessionID).AddItem(ctx, *product, quantity, req.Size, req.Dimensions); err != nil {
		return nil, err
	}

	s.logger.Debug("Added cart item",
		zap.String("session", sessionID),
		zap.String("product_id", product.ID),
		zap.Int("quantity", quantity),
	)
	return s.Get(ctx, sessionID)
}

// UpdateItem patches a cart line; unknown ids leave the cart unchanged
func (s *CartService) UpdateItem(ctx context.Context, sessionID, itemID string, req UpdateCartItemRequest) (*CartView, error) {
	patch := cart.Patch{
		Quantity:   req.Quantity,
		Size:       req.Size,
		Dimensions: req.Dimensions,
	}
	if err := s.store(sessionID).UpdateItem(ctx, itemID, patch); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	if err := s.store(sessionID).RemoveItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}
