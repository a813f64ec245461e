package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/repositories"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

// respondServiceError maps a service error kind to an HTTP status and
// writes the reason as the response body.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrOverbooking),
		errors.Is(err, services.ErrRoomConflict),
		errors.Is(err, services.ErrRoomNumberTaken),
		errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, repositories.ErrAdminNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCommitConflict):
		// retryable: the client should reload state and retry once
		utils.JSONError(c, http.StatusConflict, "concurrent update detected, please retry")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
