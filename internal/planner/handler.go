package planner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/planner/sessions", h.createSession)
	app.Get("/api/v1/planner/sessions/:id", h.getSession)
	app.Patch("/api/v1/planner/sessions/:id", h.editSession)
	app.Post("/api/v1/planner/sessions/:id/submit", h.submitSession)
	app.Post("/api/v1/planner/sessions/:id/reset", h.resetSession)
	app.Delete("/api/v1/planner/sessions/:id", h.deleteSession)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	// an optional body pre-fills the form; parse it before anything is stored
	var prefill *FormPatch
	if len(c.Body()) > 0 {
		prefill = new(FormPatch)
		if err := c.BodyParser(prefill); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}

	v, err := h.service.Create()
	if err != nil {
		return writeError(c, err)
	}
	if prefill != nil {
		if v, err = h.service.Edit(v.ID, *prefill); err != nil {
			return writeError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	v, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(v)
}

func (h *Handler) editSession(c *fiber.Ctx) error {
	p := new(FormPatch)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	v, err := h.service.Edit(c.Params("id"), *p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(v)
}

func (h *Handler) submitSession(c *fiber.Ctx) error {
	v, err := h.service.Submit(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(v)
}

func (h *Handler) resetSession(c *fiber.Ctx) error {
	v, err := h.service.Reset(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(v)
}

func (h *Handler) deleteSession(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func writeError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ve.Fields})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
