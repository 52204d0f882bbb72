package handler

import (
	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
	"skillcycle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the Get Involved form
type ContactHandler struct {
	contacts service.ContactService
	pages    service.PageService
}

// NewContactHandler creates a new ContactHandler instance
func NewContactHandler(contacts service.ContactService, pages service.PageService) *ContactHandler {
	return &ContactHandler{contacts: contacts, pages: pages}
}

// ListInquiryTypes godoc
// @Summary List contact inquiry types
// @Tags contact
// @Produce json
// @Success 200 {array} dto.InquiryTypeResponse
// @Router /contact/types [get]
func (h *ContactHandler) ListInquiryTypes(c *fiber.Ctx) error {
	return c.JSON(h.pages.InquiryTypes())
}

// Submit godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	resp, err := h.contacts.Submit(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
