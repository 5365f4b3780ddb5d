package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// ErrorDetailFor maps an error onto its HTTP status and error detail
func ErrorDetailFor(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}
	details := func(d *dto.ErrorDetail) *dto.ErrorDetail {
		if errors.As(err, &custom) && custom.Details != nil {
			d = d.WithDetails(custom.Details)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCategory):
		return http.StatusBadRequest, details(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Invalid category")).WithField("category"))
	case errors.Is(err, apperrors.ErrCategoryMismatch):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Criteria do not match the active category")
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, details(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, details(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found")))
	case errors.Is(err, apperrors.ErrSessionStore):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Session store unavailable")
	case apperrors.Is(err, apperrors.ErrDatasetUnavailable, apperrors.ErrDatasetLoad):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Dataset unavailable")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical)
	}
}
