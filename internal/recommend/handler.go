package recommend

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/pergola-planner/internal/content"
	"github.com/wichananm65/pergola-planner/internal/option"
)

type Handler struct {
	service *Service
	content content.Content
}

func NewHandler(s *Service, c content.Content) *Handler {
	return &Handler{service: s, content: c}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/pergola/recommendations", h.postRecommendations)
}

// Response is the payload of a recommendation run. Fallback is set when
// nothing matched.
type Response struct {
	Recommendations []Recommendation  `json:"recommendations"`
	Count           int               `json:"count"`
	Fallback        *content.Fallback `json:"fallback,omitempty"`
}

func (h *Handler) postRecommendations(c *fiber.Ctx) error {
	space := new(UserSpace)
	if err := c.BodyParser(space); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateSpace(space); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	recs, err := h.service.Recommend(*space)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(Response{
		Recommendations: recs,
		Count:           len(recs),
		Fallback:        h.content.FallbackFor(len(recs)),
	})
}

func validateSpace(s *UserSpace) map[string]string {
	errs := map[string]string{}
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		errs["width"] = "width must be a number greater than 0"
	}
	if !(s.Depth > 0) || math.IsInf(s.Depth, 0) {
		errs["depth"] = "depth must be a number greater than 0"
	}
	if !option.Valid(option.UseCases, s.UseCase) {
		errs["useCase"] = "unknown use case"
	}
	if !option.Valid(option.Styles, s.Style) {
		errs["style"] = "unknown style"
	}
	return errs
}
