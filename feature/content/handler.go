package content

import (
	"lincloud/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for served content.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the static route and a JSON not found fallback.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Static("/", h.service.root, fiber.Static{
		Browse:    h.service.browse,
		ByteRange: true,
	})
	app.Use(h.HandleNotFound)
}

// HandleNotFound answers requests no file matched.
func (h *Handler) HandleNotFound(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Debug("Content not found", zap.String("path", c.Path()))
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "not found",
		"path":  c.Path(),
	})
}
