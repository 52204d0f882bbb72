package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"skillcycle/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("name")}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("submit: %w", domain.ValidationErrors{domain.NewMissingFieldError("email")}), http.StatusBadRequest},
		{"unknown widget", domain.NewUnknownWidgetError("piano"), http.StatusBadRequest},
		{"page missing", domain.NewPageNotFoundError("careers"), http.StatusNotFound},
		{"locked", domain.NewInputLockedError(), http.StatusConflict},
		{"session limit", domain.NewSessionLimitError(1), http.StatusServiceUnavailable},
		{"degenerate range", domain.NewDegenerateRangeError(1, 1, 10), http.StatusInternalServerError},
		{"fiber", fiber.NewError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}
