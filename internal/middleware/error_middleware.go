package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
	"github.com/andresq/gradebook/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Anything outside the
// known taxonomy is logged server-side and answered with a generic 500 so raw
// internals never reach the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrIdentifierExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: apperrors.ErrIdentifierExists.Error()})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: apperrors.ErrUserNotFound.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: apperrors.ErrInvalidCredentials.Error()})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
