package handler

import (
	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
	"skillcycle/internal/service"
	"skillcycle/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// WidgetHandler handles widget session HTTP requests
type WidgetHandler struct {
	service   service.WidgetService
	validator *validation.Validator
}

// NewWidgetHandler creates a new WidgetHandler instance
func NewWidgetHandler(service service.WidgetService) *WidgetHandler {
	return &WidgetHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// OpenWidget godoc
// @Summary Open a widget session
// @Description Creates a fresh session of an interactive widget (math, quiz, chat, textbooks, videos)
// @Tags widgets
// @Accept json
// @Produce json
// @Param request body dto.OpenWidgetRequest true "Widget kind"
// @Success 201 {object} dto.WidgetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /widgets [post]
func (h *WidgetHandler) OpenWidget(c *fiber.Ctx) error {
	var req dto.OpenWidgetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if req.Kind == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("kind")}
	}
	kind, err := domain.ParseWidgetKind(req.Kind)
	if err != nil {
		return err
	}

	resp, err := h.service.Open(c.UserContext(), kind)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetWidget godoc
// @Summary Get a widget snapshot
// @Tags widgets
// @Produce json
// @Param id path string true "Widget session ID"
// @Success 200 {object} dto.WidgetResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /widgets/{id} [get]
func (h *WidgetHandler) GetWidget(c *fiber.Ctx) error {
	resp, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ApplyAction godoc
// @Summary Apply an action to a widget
// @Description Delivers one user action (start, select, advance, reset, submit, open, back, toggle_play)
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget session ID"
// @Param request body dto.ActionRequest true "Action"
// @Success 200 {object} dto.WidgetResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /widgets/{id}/actions [post]
func (h *WidgetHandler) ApplyAction(c *fiber.Ctx) error {
	var req dto.ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if errs := h.validator.ValidateActionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Act(c.UserContext(), c.Params("id"), req.ToAction())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CloseWidget godoc
// @Summary Close a widget session
// @Tags widgets
// @Param id path string true "Widget session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /widgets/{id} [delete]
func (h *WidgetHandler) CloseWidget(c *fiber.Ctx) error {
	if err := h.service.Close(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
