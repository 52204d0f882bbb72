package handler

import (
	"skillcycle/internal/dto"
	"skillcycle/internal/middleware"
	"skillcycle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler of the API
type Handlers struct {
	Widgets *WidgetHandler
	Pages   *PageHandler
	Contact *ContactHandler
	// Sessions reports the open widget count for the health check.
	Sessions func() int
}

// NewHandlers wires handlers to their services
func NewHandlers(widgets service.WidgetService, pages service.PageService, contacts service.ContactService) *Handlers {
	return &Handlers{
		Widgets:  NewWidgetHandler(widgets),
		Pages:    NewPageHandler(pages),
		Contact:  NewContactHandler(contacts, pages),
		Sessions: widgets.Count,
	}
}

// RegisterRoutes mounts the API under /api and the health check at /healthz
func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Sessions: h.Sessions()})
	})

	api := app.Group("/api")

	api.Get("/pages", h.Pages.ListPages)
	api.Get("/pages/:slug", h.Pages.GetPage)
	api.Get("/catalog/textbooks", h.Pages.ListTextbooks)
	api.Get("/catalog/videos", h.Pages.ListVideos)

	vm := middleware.NewValidationMiddleware()
	widgets := api.Group("/widgets")
	widgets.Post("/", h.Widgets.OpenWidget)
	widgets.Get("/:id", vm.ValidateWidgetID(), h.Widgets.GetWidget)
	widgets.Post("/:id/actions", vm.ValidateWidgetID(), h.Widgets.ApplyAction)
	widgets.Delete("/:id", vm.ValidateWidgetID(), h.Widgets.CloseWidget)

	api.Get("/contact/types", h.Contact.ListInquiryTypes)
	api.Post("/contact", h.Contact.Submit)
}
