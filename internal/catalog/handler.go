package catalog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/pergola-planner/internal/sizespec"
)

type Handler struct {
	service    *Service
	allowReset bool
}

// NewHandler builds the plan handler. allowReset enables the dev-only
// POST /dev/reset-plans endpoint.
func NewHandler(service *Service, allowReset bool) *Handler {
	return &Handler{service: service, allowReset: allowReset}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/pergola/plans", h.getPlans)
	app.Get("/api/v1/pergola/plans/:id", h.getPlan)

	app.Post("/dev/reset-plans", h.resetPlans)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/pergola/plans", h.createPlan)
	app.Put("/api/v1/pergola/plans/:id", h.updatePlan)
	app.Delete("/api/v1/pergola/plans/:id", h.deletePlan)
}

func (h *Handler) getPlans(c *fiber.Ctx) error {
	plans, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(plans)
}

func (h *Handler) getPlan(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}

// resetPlans clears the catalog and inserts the posted list, or the default
// sample plans when the body is not a plan list. An empty list clears the
// catalog without re-seeding.
func (h *Handler) resetPlans(c *fiber.Ctx) error {
	if !h.allowReset {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var plans []Product
	if err := c.BodyParser(&plans); err != nil {
		plans = DefaultPlans()
	}
	for i := range plans {
		if ves := validatePlanPayload(&plans[i]); len(ves) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "errors": ves})
		}
	}

	if err := h.service.ResetPlans(plans); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return c.JSON(plans)
}

func validatePlanPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Title == "" {
		errs["title"] = "title is required"
	}
	if p.Slug == "" {
		errs["slug"] = "slug is required"
	}
	for _, s := range p.Specs {
		if s.Label == "" {
			errs["specs"] = "every spec needs a label"
			break
		}
	}
	if size, ok := p.Spec(LabelSize); ok {
		if _, ok := sizespec.Parse(size.Value); !ok {
			errs["size"] = `size must look like "14x14 ft", "14 x 14" or "14 by 14"`
		}
	}
	return errs
}

func (h *Handler) createPlan(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// validate payload and return all validation errors together
	if ves := validatePlanPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updatePlan(c *fiber.Ctx) error {
	id := c.Params("id")

	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validatePlanPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, *p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deletePlan(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Plan deleted")
}
