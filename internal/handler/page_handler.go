package handler

import (
	"skillcycle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves site content
type PageHandler struct {
	service service.PageService
}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler(service service.PageService) *PageHandler {
	return &PageHandler{service: service}
}

// ListPages godoc
// @Summary List site pages
// @Tags pages
// @Produce json
// @Success 200 {object} dto.PageListResponse
// @Router /pages [get]
func (h *PageHandler) ListPages(c *fiber.Ctx) error {
	return c.JSON(h.service.ListPages())
}

// GetPage godoc
// @Summary Get a page
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} dto.PageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pages/{slug} [get]
func (h *PageHandler) GetPage(c *fiber.Ctx) error {
	resp, err := h.service.GetPage(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListTextbooks godoc
// @Summary List the textbook library
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.TextbookListResponse
// @Router /catalog/textbooks [get]
func (h *PageHandler) ListTextbooks(c *fiber.Ctx) error {
	return c.JSON(h.service.ListTextbooks())
}

// ListVideos godoc
// @Summary List the video library
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.VideoListResponse
// @Router /catalog/videos [get]
func (h *PageHandler) ListVideos(c *fiber.Ctx) error {
	return c.JSON(h.service.ListVideos())
}
