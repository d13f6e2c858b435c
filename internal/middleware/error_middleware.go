package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP statuses and the
// response envelope. Storage failures never leak detail to the caller; the
// cause is logged here instead.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrEmptyCourseList),
		errors.Is(err, apperrors.ErrMissingPlanIdent):
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(errorMessage(err, "Validation failed")))

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(errorMessage(err, "Authentication failed")))

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPlanNotFound),
		errors.Is(err, apperrors.ErrCustomerNotFound),
		errors.Is(err, apperrors.ErrSchoolNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorEnvelope(errorMessage(err, "Resource not found")))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorEnvelope(errorMessage(err, "Resource already exists")))

	case errors.Is(err, apperrors.ErrUpstreamFailure):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Upstream service failure")
		c.JSON(http.StatusBadGateway, dto.NewErrorEnvelope("Upstream service failure"))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorEnvelope("Internal server error"))
	}
}

// errorMessage prefers the wrapped message and falls back to a generic one.
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
