package controllers

import (
	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	catalog *services.CatalogService
	cart    *services.CartStore
}

func NewCartController(catalog *services.CatalogService, cart *services.CartStore) *CartController {
	return &CartController{catalog: catalog, cart: cart}
}

// @Summary Get cart
// @Description Cart lines, item count and total for the current session
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	summary, err := ctrl.cart.Summary(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": summary})
}

// @Summary Add to cart
// @Description Adds a quantity of a product in a colour. A rejected add leaves the cart unchanged and names the failed constraint.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.AddToCartRequest true "Cart line"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	product, err := ctrl.catalog.Product(ctx, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := ctrl.cart.Add(ctx, middleware.SessionID(c), *product, req.Quantity, req.Color)
	if err != nil {
		respondWithData(c, err, &summary)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": product.Name + " added to cart", "data": summary})
}

// @Summary Remove cart line
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param productId path string true "Product ID"
// @Param color query string false "Selected colour of the line"
// @Success 200 {object} models.Response
// @Router /cart/{productId} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	summary, err := ctrl.cart.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("productId"), c.Query("color"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": summary})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cart.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared"})
}

// @Summary Get wishlist
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *CartController) GetWishlist(c *gin.Context) {
	items, err := ctrl.cart.Wishlist(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Wishlist retrieved", "data": items})
}

// @Summary Add to wishlist
// @Description Adding a product that is already on the wishlist is a no-op
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.WishlistRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist [post]
func (ctrl *CartController) AddToWishlist(c *gin.Context) {
	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	product, err := ctrl.catalog.Product(ctx, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := ctrl.cart.AddToWishlist(ctx, middleware.SessionID(c), *product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": product.Name + " added to wishlist", "data": items})
}

// @Summary Remove from wishlist
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [delete]
func (ctrl *CartController) RemoveFromWishlist(c *gin.Context) {
	items, err := ctrl.cart.RemoveFromWishlist(c.Request.Context(), middleware.SessionID(c), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed from wishlist", "data": items})
}
