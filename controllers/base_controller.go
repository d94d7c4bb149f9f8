package controllers

import (
	"errors"
	"net/http"

	"lafamilia/logger"
	"lafamilia/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain error codes to HTTP statuses.
func statusFor(err error) int {
	switch models.CodeOf(err) {
	case models.CodeLoadFailed:
		return http.StatusBadGateway
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeValidationFailed:
		return http.StatusUnprocessableEntity
	case models.CodeBusinessRule, models.CodeInvalidState:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func errorBody(err error) gin.H {
	resp := gin.H{"success": false, "message": err.Error()}

	var cartErr *models.CartError
	var appErr *models.AppError
	switch {
	case errors.As(err, &cartErr):
		resp["error"] = string(cartErr.Constraint)
	case errors.As(err, &appErr):
		resp["message"] = appErr.Message
		resp["error"] = string(appErr.Code)
	}
	return resp
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	resp := errorBody(err)

	if status >= http.StatusInternalServerError {
		logger.FromGin(c).Error("request failed", zap.Error(err))
		resp["message"] = "Internal server error"
	}
	_ = c.Error(err)
	c.JSON(status, resp)
}

// respondWithData reports a recoverable failure together with the state the
// caller should keep showing, e.g. a wizard that refused to advance.
func respondWithData[T any](c *gin.Context, err error, data *T) {
	status := statusFor(err)
	if data == nil || status >= http.StatusInternalServerError {
		respondError(c, err)
		return
	}
	resp := errorBody(err)
	resp["data"] = data
	_ = c.Error(err)
	c.JSON(status, resp)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}
