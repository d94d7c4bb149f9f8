package controllers

import (
	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/services"
	"lafamilia/utils"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	submissions *services.SubmissionService
	directory   *services.DirectoryService
}

func NewSubmissionController(submissions *services.SubmissionService, directory *services.DirectoryService) *SubmissionController {
	return &SubmissionController{submissions: submissions, directory: directory}
}

// @Summary Quote an event registration
// @Description Registration fee plus transport plus snacks, without registering
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body models.EventRegistrationRequest true "Registration"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /events/{id}/quote [post]
func (ctrl *SubmissionController) QuoteRegistration(c *gin.Context) {
	var req models.EventRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.EventID = c.Param("id")

	reg, err := ctrl.submissions.QuoteRegistration(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Registration quoted", "data": reg})
}

// @Summary Register for an event
// @Tags Events
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Event ID"
// @Param body body models.EventRegistrationRequest true "Registration"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /events/{id}/register [post]
func (ctrl *SubmissionController) RegisterForEvent(c *gin.Context) {
	var req models.EventRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.EventID = c.Param("id")

	reg, err := ctrl.submissions.RegisterForEvent(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration submitted successfully! Total: " + reg.TotalLabel,
		"data":    reg,
	})
}

// @Summary Estimate club joining fee
// @Tags Clubs
// @Produce json
// @Param id path string true "Club ID"
// @Param level query string true "Chamber membership level"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clubs/{id}/fee [get]
func (ctrl *SubmissionController) EstimateClubFee(c *gin.Context) {
	club, err := ctrl.directory.Club(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	fee := services.EstimateClubFee(*club, c.Query("level"))
	c.JSON(200, gin.H{
		"success": true,
		"message": "Fee estimated",
		"data":    gin.H{"clubId": club.ID, "level": c.Query("level"), "fee": fee, "feeLabel": utils.FormatPrice(fee)},
	})
}

// @Summary Join a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Club ID"
// @Param body body models.ClubInterestRequest true "Interest"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clubs/{id}/join [post]
func (ctrl *SubmissionController) JoinClub(c *gin.Context) {
	var req models.ClubInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.ClubID = c.Param("id")

	interest, err := ctrl.submissions.JoinClub(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Thank you for your interest in " + interest.ClubName + "!", "data": interest})
}

// @Summary Review a member
// @Tags Reviews
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param body body models.ReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *SubmissionController) SubmitReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	review, err := ctrl.submissions.SubmitReview(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Thank you for your review!", "data": review})
}
