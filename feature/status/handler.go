package status

import (
	"stash-bridge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for status.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", h.HandleHealth)
	group := app.Group("/runs")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleGetRun)
}

// HandleHealth reports dependency connectivity.
// @Summary Health Check
// @Description Probes Stash, the source database and the media archive.
// @Tags status
// @Produce json
// @Success 200 {object} status.Health "All dependencies reachable"
// @Failure 503 {object} status.Health "One or more dependencies down"
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	health := h.service.Check(c.Context())
	if !health.OK() {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Health check failed",
			zap.String("stash", health.Stash),
			zap.String("source", health.Source),
			zap.String("archive", health.Archive),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(health)
	}
	return c.JSON(health)
}

// HandleListRuns returns all sync runs, newest first.
// @Summary List Sync Runs
// @Tags status
// @Produce json
// @Success 200 {array} runs.Run "Sync runs"
// @Router /runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	return c.JSON(h.service.Runs())
}

// HandleGetRun returns one sync run with its item errors.
// @Summary Get Sync Run
// @Tags status
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} runs.Run "Sync run"
// @Failure 404 {object} map[string]string "Unknown run ID"
// @Router /runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	run, ok := h.service.Run(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown run id",
		})
	}
	return c.JSON(run)
}
