package controllers

import (
	"errors"

	"lafamilia/libs"
	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/services"
	"lafamilia/utils"

	"github.com/gin-gonic/gin"
)

type AdvertiseController struct {
	pricing  *services.PricingService
	orders   *services.AdOrderService
	uploader libs.CreativeUploader
}

func NewAdvertiseController(pricing *services.PricingService, orders *services.AdOrderService, uploader libs.CreativeUploader) *AdvertiseController {
	return &AdvertiseController{pricing: pricing, orders: orders, uploader: uploader}
}

// @Summary List ad packages
// @Description Advertising packages with their runtime and detail-level pricing tables
// @Tags Advertise
// @Produce json
// @Success 200 {object} models.Response
// @Router /advertise/packages [get]
func (ctrl *AdvertiseController) ListPackages(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Ad packages retrieved", "data": ctrl.pricing.Packages()})
}

// @Summary Quote an ad
// @Description basePrice x runtime multiplier x detail price factor
// @Tags Advertise
// @Produce json
// @Param type query string true "Ad package type"
// @Param runtime query string true "Runtime duration label"
// @Param detailsLevel query string true "Details level label"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /advertise/quote [get]
func (ctrl *AdvertiseController) Quote(c *gin.Context) {
	var req models.AdQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	pkg, err := ctrl.pricing.Package(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	price := ctrl.pricing.Quote(pkg, req.Runtime, req.DetailsLevel)
	if price == 0 {
		respondError(c, models.NewValidationError("Invalid runtime or detail level selected for price calculation."))
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Quote calculated",
		"data": gin.H{
			"type":         pkg.Type,
			"runtime":      req.Runtime,
			"detailsLevel": req.DetailsLevel,
			"price":        price,
			"priceLabel":   utils.FormatPrice(price),
		},
	})
}

// @Summary Start an ad order
// @Description Starts the wizard from a package type or a URL-encoded package descriptor
// @Tags Advertise
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param type query string false "Ad package type"
// @Param package query string false "URL-encoded JSON package descriptor"
// @Param body body models.AdStartRequest false "Package"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /advertise/order [post]
func (ctrl *AdvertiseController) Start(c *gin.Context) {
	var req models.AdStartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	view, err := ctrl.orders.Start(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Ad order started", "data": view})
}

// @Summary Get ad order
// @Tags Advertise
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /advertise/order [get]
func (ctrl *AdvertiseController) Get(c *gin.Context) {
	view, err := ctrl.orders.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Ad order retrieved", "data": view})
}

// @Summary Select runtime and details level
// @Description Re-quotes the order. An invalid pair is kept with a zero price and blocks Next.
// @Tags Advertise
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.AdSelectRequest true "Selection"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /advertise/order/selection [put]
func (ctrl *AdvertiseController) Select(c *gin.Context) {
	var req models.AdSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.orders.Select(c.Request.Context(), middleware.SessionID(c), req.Runtime, req.DetailsLevel)
	if err != nil {
		respondWithData(c, err, view)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Price updated", "data": view})
}

// @Summary Update ad content
// @Tags Advertise
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.AdContentRequest true "Ad content"
// @Success 200 {object} models.Response
// @Router /advertise/order/content [put]
func (ctrl *AdvertiseController) UpdateContent(c *gin.Context) {
	var req models.AdContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.orders.UpdateContent(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Ad content saved", "data": view})
}

// @Summary Upload ad creative
// @Description Stores the image and sets it as the ad image URL
// @Tags Advertise
// @Accept multipart/form-data
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param image formData file true "Creative image (jpg, png, webp)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /advertise/order/creative [post]
func (ctrl *AdvertiseController) UploadCreative(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, errors.New("image file is required"))
		return
	}

	url, err := ctrl.uploader.Upload(c, file)
	if err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
		return
	}

	view, err := ctrl.orders.SetCreativeImage(c.Request.Context(), middleware.SessionID(c), url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Creative uploaded", "data": view})
}

// @Summary Set consent
// @Tags Advertise
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.ConsentRequest true "Consent"
// @Success 200 {object} models.Response
// @Router /advertise/order/consent [put]
func (ctrl *AdvertiseController) SetConsent(c *gin.Context) {
	var req models.ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.orders.SetConsent(c.Request.Context(), middleware.SessionID(c), req.Agreed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Consent saved", "data": view})
}

// @Summary Set ad payment method
// @Tags Advertise
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.PaymentMethodRequest true "credit-card, paypal, mpesa or bank-transfer"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /advertise/order/payment [put]
func (ctrl *AdvertiseController) SetPaymentMethod(c *gin.Context) {
	var req models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := ctrl.orders.SetPaymentMethod(c.Request.Context(), middleware.SessionID(c), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Payment method saved", "data": view})
}

// @Summary Next ad order step
// @Tags Advertise
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /advertise/order/next [post]
func (ctrl *AdvertiseController) Next(c *gin.Context) {
	view, err := ctrl.orders.Next(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondWithData(c, err, view)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Moved to " + view.Step, "data": view})
}

// @Summary Previous ad order step
// @Tags Advertise
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /advertise/order/previous [post]
func (ctrl *AdvertiseController) Previous(c *gin.Context) {
	view, err := ctrl.orders.Previous(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondWithData(c, err, view)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Moved to " + view.Step, "data": view})
}

// @Summary Ad order summary
// @Tags Advertise
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /advertise/order/summary [get]
func (ctrl *AdvertiseController) Summary(c *gin.Context) {
	summary, err := ctrl.orders.Summary(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Ad order summary", "data": summary})
}

// @Summary Submit ad order
// @Description One-shot. Without consent the wizard returns to the Consent step.
// @Tags Advertise
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /advertise/order/submit [post]
func (ctrl *AdvertiseController) Submit(c *gin.Context) {
	view, err := ctrl.orders.Submit(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondWithData(c, err, view)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Ad order submitted successfully", "data": view})
}
