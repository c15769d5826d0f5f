package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursescheduler/internal/app/models/dto"
	"github.com/yigit/coursescheduler/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP status codes and writes the response
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found")).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed"))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, messageOr(err, "Bad request"))
	default:
		// Never leak internal error text
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOr prefers the message of a CustomError over the generic fallback
func messageOr(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

// NotFoundHandler answers requests that match no route
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewResourceNotFoundError("Route "+c.Request.URL.Path+" not found"))
	}
}
