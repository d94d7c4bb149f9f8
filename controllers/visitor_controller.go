package controllers

import (
	"time"

	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/services"

	"github.com/gin-gonic/gin"
)

type VisitorController struct {
	visitors *services.VisitorService
	now      func() time.Time
}

func NewVisitorController(visitors *services.VisitorService) *VisitorController {
	return &VisitorController{visitors: visitors, now: time.Now}
}

// @Summary Record a visit
// @Description Returns the welcome message for the time since the last visit and records this one
// @Tags Visitor
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /visit [post]
func (ctrl *VisitorController) Visit(c *gin.Context) {
	resp, err := ctrl.visitors.Visit(c.Request.Context(), middleware.SessionID(c), ctrl.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": resp.Message, "data": resp})
}

// @Summary Get theme
// @Tags Visitor
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.Response
// @Router /theme [get]
func (ctrl *VisitorController) GetTheme(c *gin.Context) {
	theme, err := ctrl.visitors.Theme(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Theme retrieved", "data": gin.H{"theme": theme}})
}

// @Summary Set theme
// @Tags Visitor
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.ThemeRequest true "light or dark"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /theme [put]
func (ctrl *VisitorController) SetTheme(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ctrl.visitors.SetTheme(c.Request.Context(), middleware.SessionID(c), req.Theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Theme updated", "data": gin.H{"theme": req.Theme}})
}
