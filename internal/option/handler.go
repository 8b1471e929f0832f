package option

import "github.com/gofiber/fiber/v2"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/pergola/options", h.getOptions)
}

func (h *Handler) getOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"useCases": UseCases,
		"styles":   Styles,
	})
}
