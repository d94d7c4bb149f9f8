package models

// CartItem is a product snapshot plus the chosen quantity and colour.
// Lines are unique by (ID, SelectedColor).
type CartItem struct {
	Product
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor"`
}

func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
}

type CartSummary struct {
	Items      []CartItem `json:"items"`
	Count      int        `json:"count"`
	Total      float64    `json:"total"`
	TotalLabel string     `json:"totalLabel"`
}

type WishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
