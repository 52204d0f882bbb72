package middleware

import (
	"skillcycle/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateWidgetID rejects malformed widget session ids before they reach a handler
func (vm *ValidationMiddleware) ValidateWidgetID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateWidgetID(id); len(errors) > 0 {
			return errors // handled by ErrorHandler
		}
		c.Locals("validated_widget_id", id)
		return c.Next()
	}
}

