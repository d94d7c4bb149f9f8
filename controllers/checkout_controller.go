package controllers

import (
	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	orders   *services.OrderService
}

func NewCheckoutController(checkout *services.CheckoutService, orders *services.OrderService) *CheckoutController {
	return &CheckoutController{checkout: checkout, orders: orders}
}

// @Summary Open checkout
// @Description Starts the checkout wizard at the Details step. Requires a non-empty cart.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Open(c *gin.Context) {
	view, err := ctrl.checkout.Open(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Checkout started", "data": view})
}

// @Summary Get checkout
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [get]
func (ctrl *CheckoutController) Get(c *gin.Context) {
	view, err := ctrl.checkout.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Checkout retrieved", "data": view})
}

// @Summary Set customer details
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.CheckoutDetailsRequest true "Customer details"
// @Success 200 {object} models.Response
// @Router /checkout/details [put]
func (ctrl *CheckoutController) SetDetails(c *gin.Context) {
	var req models.CheckoutDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.checkout.SetDetails(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Details saved", "data": view})
}

// @Summary Set shipping
// @Description local-pickup is free; delivery without a company uses the first carrier
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.CheckoutShippingRequest true "Shipping choice"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout/shipping [put]
func (ctrl *CheckoutController) SetShipping(c *gin.Context) {
	var req models.CheckoutShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.checkout.SetShipping(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Shipping saved", "data": view})
}

// @Summary Set payment method
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.CheckoutPaymentRequest true "Payment method"
// @Success 200 {object} models.Response
// @Router /checkout/payment [put]
func (ctrl *CheckoutController) SetPayment(c *gin.Context) {
	var req models.CheckoutPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.checkout.SetPayment(c.Request.Context(), middleware.SessionID(c), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Payment method saved", "data": view})
}

// @Summary Next checkout step
// @Description Advances one step when the current step validates. On failure the unchanged checkout is returned with the message.
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout/next [post]
func (ctrl *CheckoutController) Next(c *gin.Context) {
	view, err := ctrl.checkout.Next(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondWithData(c, err, view)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Moved to " + view.Step, "data": view})
}

// @Summary Previous checkout step
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /checkout/previous [post]
func (ctrl *CheckoutController) Previous(c *gin.Context) {
	view, err := ctrl.checkout.Previous(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondWithData(c, err, view)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Moved to " + view.Step, "data": view})
}

// @Summary Place order
// @Description Saves the order, empties the cart and ends checkout
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout/place-order [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	order, err := ctrl.checkout.PlaceOrder(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": order})
}

// @Summary List shipping companies
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/shipping-companies [get]
func (ctrl *CheckoutController) ShippingCompanies(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Shipping companies retrieved", "data": services.ShippingCompanies})
}

// @Summary Order history
// @Description Orders of the current session, newest first
// @Tags Orders
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *CheckoutController) History(c *gin.Context) {
	orders, err := ctrl.orders.History(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order history retrieved", "data": orders})
}
