package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/catalog"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/pricing"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository/memory"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

func newCartService(t *testing.T, products catalog.Provider) *CartService {
	t.Helper()
	if products == nil {
		products = catalog.NewDefault()
	}
	return NewCartService(products, memory.NewLocalStorage(), pricing.NewDefaultCalculator(), zap.NewNop())
}

func TestCartServiceGetEmpty(t *testing.T) {
	svc := newCartService(t, nil)

	view, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, pricing.Totals{
		Shipping: money.Rupees(500),
		Total:    money.Rupees(500),
	}, view.Totals)
}

func TestCartServiceAddItem(t *testing.T) {
	svc := newCartService(t, nil)
	ctx := context.Background()

	view, err := svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "plywood1"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, domain.SizeStandard, view.Items[0].Size)

	view, err = svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "plywood1", Quantity: 4})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)

	// 5 x 1200 is above the free shipping threshold
	assert.Equal(t, money.Rupees(6000), view.Totals.Subtotal)
	assert.Equal(t, money.Amount(0), view.Totals.Shipping)
	assert.Equal(t, money.Rupees(7080), view.Totals.Total)
}

func TestCartServiceAddItemRejectsHugeQuantity(t *testing.T) {
	svc := newCartService(t, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "plywood1", Quantity: 1e15})
	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "quantity", validationErr.Field)

	view, err := svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, money.Rupees(500), view.Totals.Total)
}

func TestCartServiceAddItemCannotWrapQuantity(t *testing.T) {
	svc := newCartService(t, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "plywood1", Quantity: math.MaxInt64})
	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	view, err := svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "plywood1", Quantity: domain.MaxQuantity})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	_, err = svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "plywood1", Quantity: 5})
	require.ErrorAs(t, err, &validationErr)

	view, err = svc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, domain.MaxQuantity, view.Items[0].Quantity)
	assert.Positive(t, int64(view.Totals.Total))
}

func TestCartServiceUpdateItemRejectsHugeQuantity(t *testing.T) {
	svc := newCartService(t, nil)
	ctx := context.Background()
	_, err := svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "glass1", Quantity: 2})
	require.NoError(t, err)

	qty := domain.MaxQuantity + 1
	_, err = svc.UpdateItem(ctx, session, "glass1", UpdateCartItemRequest{Quantity: &qty})
	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	view, err := svc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	svc := newCartService(t, nil)

	_, err := svc.AddItem(context.Background(), session, AddCartItemRequest{ProductID: "plywood99"})
	var notFound *errors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "plywood99", notFound.ID)
}

func TestCartServiceAddUnavailableProduct(t *testing.T) {
	products, err := catalog.NewStatic([]domain.Product{{
		ID:           "mirror9",
		Name:         "Antique Mirror",
		Category:     domain.CategoryGlass,
		Price:        domain.FixedPrice(money.Rupees(900)),
		Availability: false,
	}})
	require.NoError(t, err)
	svc := newCartService(t, products)

	_, err = svc.AddItem(context.Background(), session, AddCartItemRequest{ProductID: "mirror9"})
	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "product_id", validationErr.Field)

	view, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	svc := newCartService(t, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "glass1"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session, AddCartItemRequest{ProductID: "other1"})
	require.NoError(t, err)

	qty := 3
	size := domain.SizeCustom
	view, err := svc.UpdateItem(ctx, session, "glass1", UpdateCartItemRequest{
		Quantity:   &qty,
		Size:       &size,
		Dimensions: &domain.Dimensions{Width: "600", Height: "900"},
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, domain.SizeCustom, view.Items[0].Size)
	assert.Equal(t, "600", view.Items[0].Dimensions.Width)

	view, err = svc.RemoveItem(ctx, session, "glass1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "other1", view.Items[0].ID)

	view, err = svc.RemoveItem(ctx, session, "glass1")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}
