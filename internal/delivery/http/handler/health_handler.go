package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/utils"
)

// Pinger - зависимость, доступность которой проверяет readiness
type Pinger interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на liveness и readiness проверки
type HealthHandler struct {
	deps   map[string]Pinger
	logger *zap.Logger
}

// NewHealthHandler создает HealthHandler. Nil зависимости пропускаются.
func NewHealthHandler(deps map[string]Pinger, logger *zap.Logger) *HealthHandler {
	active := make(map[string]Pinger, len(deps))
	for name, dep := range deps {
		if dep != nil {
			active[name] = dep
		}
	}
	return &HealthHandler{deps: active, logger: logger}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"status": "healthy",
		"time":   time.Now().UTC(),
	}, nil)
}

// Ready godoc
// @Summary Readiness probe
// @Description Проверяет соединения с PostgreSQL и Redis
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	started := time.Now()
	checks := make(map[string]string, len(h.deps))
	failed := false
	for name, dep := range h.deps {
		if err := dep.Health(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unavailable"
			failed = true
			continue
		}
		checks[name] = "ok"
	}

	if failed {
		return utils.SendError(c, errors.ErrServiceUnavailable.WithDetails(map[string]interface{}{"checks": checks}))
	}
	return utils.SendSuccess(c, fiber.Map{"status": "ready", "checks": checks}, &utils.Meta{
		Total:    len(checks),
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000,
	})
}
