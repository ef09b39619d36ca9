package controllers

import (
	"errors"
	"net/http"

	"hotel-admin-backend/logger"
	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates the service error conventions to HTTP:
// FieldErrors -> 400 with the per-field map, validation -> 400, conflict ->
// 409, *_not_found -> 404, anything else -> 500 (logged, not leaked).
func respondServiceError(c *gin.Context, err error) {
	var fields services.FieldErrors
	if errors.As(err, &fields) {
		utils.JSONFieldErrors(c, http.StatusBadRequest, fields)
		return
	}

	switch {
	case services.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, services.CleanMessage(err))
	case services.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, services.CleanMessage(err))
	case services.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		logger.L().WithError(err).Error("unhandled service error")
		utils.JSONError(c, http.StatusInternalServerError, "error interno del servidor")
	}
}
