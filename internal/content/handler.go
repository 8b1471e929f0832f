package content

import "github.com/gofiber/fiber/v2"

type Handler struct {
	content Content
}

func NewHandler(c Content) *Handler {
	return &Handler{content: c}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/pergola/content", h.getContent)
}

func (h *Handler) getContent(c *fiber.Ctx) error {
	return c.JSON(h.content)
}
