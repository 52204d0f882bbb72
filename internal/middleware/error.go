package middleware

import (
	"errors"
	"net/http"

	"skillcycle/internal/domain"
	"skillcycle/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists every field that failed validation.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

var statusByCode = map[domain.ErrorCode]int{
	domain.CodeNotFound:        http.StatusNotFound,
	domain.CodeSessionNotFound: http.StatusNotFound,
	domain.CodeItemNotFound:    http.StatusNotFound,
	domain.CodePageNotFound:    http.StatusNotFound,

	domain.CodeInvalidInput:  http.StatusBadRequest,
	domain.CodeUnknownWidget: http.StatusBadRequest,
	domain.CodeValidation:    http.StatusBadRequest,
	domain.CodeMissingField:  http.StatusBadRequest,
	domain.CodeInvalidFormat: http.StatusBadRequest,
	domain.CodeOutOfRange:    http.StatusBadRequest,

	// Well-formed actions the widget cannot take in its current state.
	domain.CodeInvalidSelection: http.StatusConflict,
	domain.CodeInvalidAction:    http.StatusConflict,
	domain.CodeInputLocked:      http.StatusConflict,

	domain.CodeSessionLimit: http.StatusServiceUnavailable,
}

// StatusOf returns the HTTP status an error is reported with.
func StatusOf(err error) int {
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	if status, ok := statusByCode[domain.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler is the fiber error handler for the API.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(zap.String("path", c.Path()))
		status := StatusOf(err)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Debug("Validation failed", zap.Int("error_count", len(validationErrs)))
			return c.Status(status).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  status,
				Errors:  validationErrs,
			})
		}

		resp := ErrorResponse{Status: status}
		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			resp.Code = string(domainErr.Code)
			resp.Message = domainErr.Message
			if len(domainErr.Context) > 0 {
				resp.Details = domainErr.Context
			}
		case errors.As(err, &fiberErr):
			resp.Code = "HTTP_ERROR"
			resp.Message = fiberErr.Message
		default:
			resp.Code = string(domain.CodeInternal)
			resp.Message = "Internal server error"
		}

		if status >= http.StatusInternalServerError {
			log.Error("Request failed", zap.String("code", resp.Code), zap.Int("status", status), zap.Error(err))
		} else {
			log.Debug("Request rejected", zap.String("code", resp.Code), zap.Int("status", status))
		}
		return c.Status(status).JSON(resp)
	}
}
