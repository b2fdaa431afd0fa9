package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/delivery/http/middleware"
	"github.com/itinerary-service/internal/usecase/dto"
)

// RoutePreviewer - сценарий предпросмотра маршрута дня
type RoutePreviewer interface {
	Preview(ctx context.Context, userID, listID string, body []byte) *dto.PreviewOutcome
}

// RoutePreviewHandler обрабатывает запросы предпросмотра маршрута
type RoutePreviewHandler struct {
	previewUC RoutePreviewer
	logger    *zap.Logger
}

// NewRoutePreviewHandler создает новый экземпляр RoutePreviewHandler
func NewRoutePreviewHandler(previewUC RoutePreviewer, logger *zap.Logger) *RoutePreviewHandler {
	return &RoutePreviewHandler{
		previewUC: previewUC,
		logger:    logger,
	}
}

// Preview godoc
// @Summary Preview the route of a scheduled day
// @Description Упорядочивает запланированные места дня и возвращает участки маршрута с расстоянием и временем в пути
// @Tags Route Preview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID (UUID)"
// @Param request body dto.RoutePreviewRequest true "Preview request"
// @Success 200 {object} dto.RoutePreviewResponse "ok or insufficient_items"
// @Failure 400 {object} dto.RoutePreviewErrorResponse "invalid_payload or date_outside_trip_range"
// @Failure 401 {object} dto.RoutePreviewErrorResponse
// @Failure 404 {object} dto.RoutePreviewErrorResponse
// @Failure 500 {object} dto.RoutePreviewErrorResponse
// @Failure 501 {object} dto.RoutePreviewResponse "provider_unavailable"
// @Router /api/v1/lists/{id}/route-preview [post]
func (h *RoutePreviewHandler) Preview(c *fiber.Ctx) error {
	listID := c.Params("id")

	h.logger.Debug("Handling route preview request", zap.String("list_id", listID))

	// fasthttp reuses the body buffer after the handler returns
	body := append([]byte(nil), c.Body()...)

	outcome := h.previewUC.Preview(c.UserContext(), middleware.UserID(c), listID, body)
	return c.Status(outcome.HTTPStatus).JSON(outcome.Body())
}
