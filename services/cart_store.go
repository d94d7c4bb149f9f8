package services

import (
	"context"
	"fmt"

	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/utils"
)

const defaultMaxOrderQuantity = 9999

// AddToCart applies one add request to items. On any violation it returns
// the original slice untouched together with a *models.CartError.
func AddToCart(items []models.CartItem, product models.Product, quantity int, color string) ([]models.CartItem, error) {
	if quantity < 1 {
		return items, &models.CartError{
			Constraint: models.ConstraintQuantity,
			Message:    "Quantity must be at least 1.",
		}
	}
	if product.InStock <= 0 {
		return items, &models.CartError{
			Constraint: models.ConstraintOutOfStock,
			Message:    fmt.Sprintf("%s is out of stock!", product.Name),
		}
	}

	for i, item := range items {
		if item.ID != product.ID || item.SelectedColor != color {
			continue
		}
		next := item.Quantity + quantity
		if next > product.InStock {
			return items, &models.CartError{
				Constraint: models.ConstraintStock,
				Message:    fmt.Sprintf("Cannot add more %s. Only %d available.", product.Name, product.InStock),
			}
		}
		if product.MaxOrderQuantity > 0 && next > product.MaxOrderQuantity {
			return items, &models.CartError{
				Constraint: models.ConstraintMaxOrder,
				Message:    fmt.Sprintf("Cannot add more %s. Maximum order quantity is %d.", product.Name, product.MaxOrderQuantity),
			}
		}
		updated := append([]models.CartItem(nil), items...)
		updated[i].Quantity = next
		return updated, nil
	}

	minQty := product.MinOrderQuantity
	if minQty <= 0 {
		minQty = 1
	}
	maxQty := product.MaxOrderQuantity
	if maxQty <= 0 {
		maxQty = defaultMaxOrderQuantity
	}

	switch {
	case quantity < minQty:
		return items, &models.CartError{
			Constraint: models.ConstraintMinOrder,
			Message:    fmt.Sprintf("Minimum order quantity for %s is %d.", product.Name, minQty),
		}
	case quantity > maxQty:
		return items, &models.CartError{
			Constraint: models.ConstraintMaxOrder,
			Message:    fmt.Sprintf("Maximum order quantity for %s is %d.", product.Name, maxQty),
		}
	case quantity > product.InStock:
		return items, &models.CartError{
			Constraint: models.ConstraintStock,
			Message:    fmt.Sprintf("Only %d of %s are available.", product.InStock, product.Name),
		}
	}

	updated := append([]models.CartItem(nil), items...)
	return append(updated, models.CartItem{Product: product, Quantity: quantity, SelectedColor: color}), nil
}

func Summarize(items []models.CartItem) models.CartSummary {
	sum := models.CartSummary{Items: items}
	if sum.Items == nil {
		sum.Items = []models.CartItem{}
	}
	for _, item := range items {
		sum.Count += item.Quantity
		sum.Total += item.LineTotal()
	}
	sum.TotalLabel = utils.FormatPrice(sum.Total)
	return sum
}

// CartStore keeps each session's cart and wishlist in the state store.
type CartStore struct {
	store repositories.StateStore
}

func NewCartStore(store repositories.StateStore) *CartStore {
	return &CartStore{store: store}
}

func (c *CartStore) Items(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if _, err := c.store.Get(ctx, sessionID, repositories.KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *CartStore) Summary(ctx context.Context, sessionID string) (models.CartSummary, error) {
	items, err := c.Items(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}
	return Summarize(items), nil
}

func (c *CartStore) Add(ctx context.Context, sessionID string, product models.Product, quantity int, color string) (models.CartSummary, error) {
	items, err := c.Items(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}
	updated, err := AddToCart(items, product, quantity, color)
	if err != nil {
		return Summarize(items), err
	}
	if err := c.store.Set(ctx, sessionID, repositories.KeyCart, updated); err != nil {
		return models.CartSummary{}, err
	}
	return Summarize(updated), nil
}

// Remove drops the line for (productID, color). Removing a missing line is
// not an error.
func (c *CartStore) Remove(ctx context.Context, sessionID, productID, color string) (models.CartSummary, error) {
	items, err := c.Items(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID == productID && item.SelectedColor == color {
			continue
		}
		kept = append(kept, item)
	}
	if err := c.store.Set(ctx, sessionID, repositories.KeyCart, kept); err != nil {
		return models.CartSummary{}, err
	}
	return Summarize(kept), nil
}

func (c *CartStore) Clear(ctx context.Context, sessionID string) error {
	return c.store.Set(ctx, sessionID, repositories.KeyCart, []models.CartItem{})
}

func (c *CartStore) Wishlist(ctx context.Context, sessionID string) ([]models.Product, error) {
	items := []models.Product{}
	if _, err := c.store.Get(ctx, sessionID, repositories.KeyWishlist, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist is idempotent by product id.
func (c *CartStore) AddToWishlist(ctx context.Context, sessionID string, product models.Product) ([]models.Product, error) {
	items, err := c.Wishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		if p.ID == product.ID {
			return items, nil
		}
	}
	items = append(items, product)
	if err := c.store.Set(ctx, sessionID, repositories.KeyWishlist, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *CartStore) RemoveFromWishlist(ctx context.Context, sessionID, productID string) ([]models.Product, error) {
	items, err := c.Wishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	kept := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	if err := c.store.Set(ctx, sessionID, repositories.KeyWishlist, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
