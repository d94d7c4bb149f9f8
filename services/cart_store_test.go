package services

import (
	"context"
	"errors"
	"testing"

	"lafamilia/models"
	"lafamilia/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartError(t *testing.T, err error) *models.CartError {
	t.Helper()
	var cartErr *models.CartError
	require.True(t, errors.As(err, &cartErr), "expected a cart error, got %v", err)
	return cartErr
}

func TestAddToCart_StockExceededLeavesCartUnchanged(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Mouse", Price: 20, InStock: 3}
	items := []models.CartItem{{Product: product, Quantity: 2, SelectedColor: "black"}}

	got, err := AddToCart(items, product, 2, "black")
	assert.Equal(t, models.ConstraintStock, cartError(t, err).Constraint)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCart_Rules(t *testing.T) {
	mug := models.Product{ID: "p2", Name: "Mug", Price: 8, InStock: 50, MinOrderQuantity: 2, MaxOrderQuantity: 6}

	tests := []struct {
		name       string
		items      []models.CartItem
		product    models.Product
		qty        int
		constraint models.CartConstraint
	}{
		{"zero quantity", nil, mug, 0, models.ConstraintQuantity},
		{"out of stock", nil, models.Product{ID: "x", Name: "Lamp", InStock: 0}, 1, models.ConstraintOutOfStock},
		{"below minimum on first add", nil, mug, 1, models.ConstraintMinOrder},
		{"above maximum on first add", nil, mug, 7, models.ConstraintMaxOrder},
		{"more than stock on first add", nil, models.Product{ID: "y", Name: "Pen", InStock: 2}, 3, models.ConstraintStock},
		{"line would pass maximum", []models.CartItem{{Product: mug, Quantity: 5}}, mug, 2, models.ConstraintMaxOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddToCart(tt.items, tt.product, tt.qty, "")
			assert.Equal(t, tt.constraint, cartError(t, err).Constraint)
			assert.Equal(t, tt.items, got)
		})
	}
}

func TestAddToCart_MinimumOnlyOnFirstInsert(t *testing.T) {
	mug := models.Product{ID: "p2", Name: "Mug", Price: 8, InStock: 50, MinOrderQuantity: 2, MaxOrderQuantity: 6}

	items, err := AddToCart(nil, mug, 2, "")
	require.NoError(t, err)
	items, err = AddToCart(items, mug, 1, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddToCart_ColoursAreSeparateLines(t *testing.T) {
	mouse := models.Product{ID: "p1", Name: "Mouse", Price: 20, InStock: 3}

	items, err := AddToCart(nil, mouse, 2, "black")
	require.NoError(t, err)
	items, err = AddToCart(items, mouse, 3, "white")
	require.NoError(t, err)
	require.Len(t, items, 2)

	_, err = AddToCart(items, mouse, 2, "black")
	assert.Error(t, err)
}

func TestAddToCart_NeverExceedsBounds(t *testing.T) {
	product := models.Product{ID: "p", Name: "Thing", InStock: 7, MinOrderQuantity: 2, MaxOrderQuantity: 5}
	var items []models.CartItem
	for _, qty := range []int{1, 2, 4, 1, 3, 1, 1, 9} {
		items, _ = AddToCart(items, product, qty, "")
		for _, item := range items {
			assert.LessOrEqual(t, item.Quantity, product.InStock)
			assert.LessOrEqual(t, item.Quantity, product.MaxOrderQuantity)
			assert.GreaterOrEqual(t, item.Quantity, product.MinOrderQuantity)
		}
	}
}

func TestCartStore(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(repositories.NewMemoryStateStore())
	mouse := models.Product{ID: "p1", Name: "Mouse", Price: 20, InStock: 3}
	mug := models.Product{ID: "p2", Name: "Mug", Price: 8, InStock: 10}

	_, err := cart.Add(ctx, "s1", mouse, 2, "black")
	require.NoError(t, err)
	summary, err := cart.Add(ctx, "s1", mug, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 48.0, summary.Total)
	assert.Equal(t, "$48.00", summary.TotalLabel)

	summary, err = cart.Add(ctx, "s1", mouse, 2, "black")
	assert.Error(t, err)
	assert.Equal(t, 3, summary.Count, "rejected add reports the unchanged cart")

	summary, err = cart.Remove(ctx, "s1", "p1", "black")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)

	require.NoError(t, cart.Clear(ctx, "s1"))
	items, err := cart.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartStore_Wishlist(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(repositories.NewMemoryStateStore())
	mouse := models.Product{ID: "p1", Name: "Mouse"}

	_, err := cart.AddToWishlist(ctx, "s1", mouse)
	require.NoError(t, err)
	list, err := cart.AddToWishlist(ctx, "s1", mouse)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = cart.RemoveFromWishlist(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
