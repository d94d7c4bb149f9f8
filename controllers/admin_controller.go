package controllers

import (
	"strconv"
	"strings"
	"time"

	"lafamilia/logger"
	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/services"
	"lafamilia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminSettings holds the single configured admin account.
type AdminSettings struct {
	Email        string
	PasswordHash string
	JWTSecret    string
	TokenExpiry  time.Duration
}

type AdminController struct {
	settings    AdminSettings
	submissions *services.SubmissionService
	content     *repositories.ContentStore
}

func NewAdminController(settings AdminSettings, submissions *services.SubmissionService, content *repositories.ContentStore) *AdminController {
	return &AdminController{settings: settings, submissions: submissions, content: content}
}

// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	invalid := models.ErrorResponse{Success: false, Message: "Invalid email or password"}
	if ctrl.settings.PasswordHash == "" || !strings.EqualFold(req.Email, ctrl.settings.Email) {
		c.JSON(401, invalid)
		return
	}

	ok, err := utils.VerifyPassword(ctrl.settings.PasswordHash, req.Password)
	if err != nil {
		logger.FromGin(c).Warn("admin password verification failed", zap.Error(err))
	}
	if !ok {
		c.JSON(401, invalid)
		return
	}

	token, err := utils.GenerateToken(ctrl.settings.JWTSecret, ctrl.settings.Email, middleware.RoleAdmin, ctrl.settings.TokenExpiry)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": models.LoginResponse{
			Token:     token,
			Email:     ctrl.settings.Email,
			ExpiresIn: ctrl.settings.TokenExpiry.String(),
		},
	})
}

// @Summary List submissions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param kind query string false "event_registration, club_interest, review or ad_order"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/submissions [get]
func (ctrl *AdminController) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	subs, err := ctrl.submissions.List(c.Request.Context(), c.Query("kind"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Submissions retrieved", "data": subs})
}

// @Summary Reload content
// @Description Drops cached data sets and loads every data file again
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/content/reload [post]
func (ctrl *AdminController) ReloadContent(c *gin.Context) {
	if err := ctrl.content.Reload(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	logger.FromGin(c).Info("content reloaded by admin", zap.String("admin", c.GetString("user_email")))
	c.JSON(200, gin.H{"success": true, "message": "Content reloaded"})
}
