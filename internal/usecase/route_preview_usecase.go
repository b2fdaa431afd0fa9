package usecase

import (
	"context"
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/metrics"
	"github.com/itinerary-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RoutePreviewUseCase builds the routing preview of one scheduled day of a list.
type RoutePreviewUseCase struct {
	listRepo        repository.ListRepository
	scheduleRepo    repository.ScheduleRepository
	placeRepo       repository.PlaceRepository
	provider        repository.RoutingProvider
	logger          *zap.Logger
	providerTimeout time.Duration
}

func NewRoutePreviewUseCase(
	listRepo repository.ListRepository,
	scheduleRepo repository.ScheduleRepository,
	placeRepo repository.PlaceRepository,
	provider repository.RoutingProvider,
	logger *zap.Logger,
	providerTimeout time.Duration,
) *RoutePreviewUseCase {
	if providerTimeout <= 0 {
		providerTimeout = 8 * time.Second
	}
	return &RoutePreviewUseCase{
		listRepo:        listRepo,
		scheduleRepo:    scheduleRepo,
		placeRepo:       placeRepo,
		provider:        provider,
		logger:          logger,
		providerTimeout: providerTimeout,
	}
}

// Preview runs the preview for the caller. It always returns an outcome; the
// steps short-circuit on the first failure.
func (uc *RoutePreviewUseCase) Preview(ctx context.Context, userID, listID string, body []byte) *dto.PreviewOutcome {
	outcome := uc.preview(ctx, userID, listID, body)
	metrics.PreviewOutcomes.WithLabelValues(outcome.Status()).Inc()
	return outcome
}

func (uc *RoutePreviewUseCase) preview(ctx context.Context, userID, listID string, body []byte) *dto.PreviewOutcome {
	if userID == "" {
		return dto.Failed(dto.StatusUnauthorized, nil, errors.ErrUnauthorized)
	}

	req, fieldErrs := dto.ParseRoutePreviewRequest(body)
	if _, err := uuid.Parse(listID); err != nil {
		fieldErrs = append([]errors.FieldError{{Field: "list_id", Message: "must be a valid UUID"}}, fieldErrs...)
	}
	if len(fieldErrs) > 0 {
		return dto.Failed(dto.StatusInvalidPayload, nil, errors.ErrInvalidPayload.WithFields(fieldErrs))
	}

	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		if stdErrors.Is(err, domain.ErrNotFound) {
			return dto.Failed(dto.StatusNotFound, req, errors.ErrListNotFound)
		}
		uc.logger.Error("Failed to load list", zap.String("list_id", listID), zap.Error(err))
		return dto.Failed(dto.StatusInternalError, req, errors.ErrDatabaseError)
	}

	if !DateWithinTrip(req.Date, list) {
		return dto.Failed(dto.StatusDateOutsideTripRange, req, errors.ErrDateOutsideTripRange.WithDetails(map[string]interface{}{
			"date":       req.Date,
			"start_date": list.StartDate,
			"end_date":   list.EndDate,
		}))
	}

	rows, err := uc.loadScheduleRows(ctx, listID, req.Date)
	if err != nil {
		uc.logger.Error("Failed to load scheduled items",
			zap.String("list_id", listID),
			zap.String("date", req.Date),
			zap.Error(err))
		return dto.Failed(dto.StatusInternalError, req, errors.ErrDatabaseError)
	}

	seq := BuildSequence(rows)

	if len(seq.RouteableSequence) < 2 {
		return &dto.PreviewOutcome{
			HTTPStatus: http.StatusOK,
			Response: &dto.RoutePreviewResponse{
				Status:          dto.StatusInsufficientItems,
				Request:         *req,
				List:            *list,
				Sequence:        seq.Sequence,
				UnroutableItems: seq.UnroutableItems,
				Legs:            []dto.Leg{},
				Summary:         buildSummary(seq, 0, nil),
			},
		}
	}

	result := uc.routeLegs(ctx, domain.RoutingRequest{
		Request:           *req,
		List:              *list,
		Sequence:          seq.Sequence,
		RouteableSequence: seq.RouteableSequence,
		Legs:              seq.Legs,
	})
	providerName := result.Provider
	if providerName == "" {
		providerName = uc.provider.Name()
	}

	if !result.OK {
		if result.Code == domain.ProviderCodeUnavailable {
			return &dto.PreviewOutcome{
				HTTPStatus: http.StatusNotImplemented,
				Response: &dto.RoutePreviewResponse{
					Status:          dto.StatusProviderUnavailable,
					Request:         *req,
					List:            *list,
					Provider:        &providerName,
					Message:         &result.Message,
					Sequence:        seq.Sequence,
					UnroutableItems: seq.UnroutableItems,
					Legs:            dto.DraftLegs(seq.Legs),
					Summary:         buildSummary(seq, len(seq.Legs), nil),
				},
			}
		}

		uc.logger.Error("Routing provider failed",
			zap.String("provider", providerName),
			zap.String("list_id", listID),
			zap.String("date", req.Date),
			zap.String("code", result.Code),
			zap.Bool("retryable", result.Retryable),
			zap.String("message", result.Message))
		appErr := errors.ErrInternalServer
		if result.Message != "" {
			appErr = appErr.WithMessage(result.Message)
		}
		return dto.Failed(dto.StatusInternalError, req, appErr)
	}

	validation := ValidateLegMetrics(result.Legs, len(seq.Legs))
	if !validation.OK {
		uc.logger.Error("Routing provider returned invalid leg metrics",
			zap.String("provider", providerName),
			zap.String("list_id", listID),
			zap.String("date", req.Date),
			zap.Int("expected_leg_count", len(seq.Legs)),
			zap.Int("received_leg_count", validation.ReceivedLegCount),
			zap.String("reason", validation.Reason))
		metrics.MetricRejections.WithLabelValues(providerName, metrics.ReasonKind(validation.Reason)).Inc()
		return dto.Failed(dto.StatusInternalError, req, errors.ErrInvalidProviderMetrics)
	}

	computed := BuildComputedLegs(seq.Legs, validation.Normalized)

	return &dto.PreviewOutcome{
		HTTPStatus: http.StatusOK,
		Response: &dto.RoutePreviewResponse{
			Status:          dto.StatusOK,
			Request:         *req,
			List:            *list,
			Provider:        &providerName,
			Sequence:        seq.Sequence,
			UnroutableItems: seq.UnroutableItems,
			Legs:            dto.ComputedLegs(computed),
			Summary:         buildSummary(seq, len(computed), computed),
		},
	}
}

// routeLegs calls the provider bounded by the configured timeout.
func (uc *RoutePreviewUseCase) routeLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	started := time.Now()
	result := uc.provider.RouteLegs(ctx, req)

	outcome := "ok"
	if !result.OK {
		outcome = result.Code
	}
	metrics.ProviderDuration.WithLabelValues(uc.provider.Name(), outcome).Observe(time.Since(started).Seconds())

	uc.logger.Debug("Routing provider call finished",
		zap.String("provider", uc.provider.Name()),
		zap.String("outcome", outcome),
		zap.Int("legs", len(req.Legs)),
		zap.Duration("elapsed", time.Since(started)))

	return result
}

// loadScheduleRows reads the joined rows and falls back to two separate
// lookups when the joined relation is unavailable.
func (uc *RoutePreviewUseCase) loadScheduleRows(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error) {
	rows, err := uc.scheduleRepo.GetScheduledRows(ctx, listID, date)
	if err == nil {
		return rows, nil
	}
	if !stdErrors.Is(err, domain.ErrRelationUnavailable) {
		return nil, err
	}

	uc.logger.Warn("Joined schedule query unavailable, falling back to separate lookups",
		zap.String("list_id", listID),
		zap.Error(err))

	items, err := uc.scheduleRepo.GetScheduledItems(ctx, listID, date)
	if err != nil {
		return nil, err
	}

	placeIDs := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.PlaceID == "" {
			continue
		}
		if _, ok := seen[item.PlaceID]; ok {
			continue
		}
		seen[item.PlaceID] = struct{}{}
		placeIDs = append(placeIDs, item.PlaceID)
	}

	var places []domain.Place
	if len(placeIDs) > 0 {
		places, err = uc.placeRepo.GetByIDs(ctx, placeIDs)
		if err != nil {
			return nil, err
		}
	}

	return HydrateScheduleRows(items, places), nil
}

// HydrateScheduleRows copies place fields onto items by place id. Items whose
// place is missing keep nil place fields.
func HydrateScheduleRows(items []domain.ScheduleRow, places []domain.Place) []domain.ScheduleRow {
	byID := make(map[string]domain.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}

	rows := make([]domain.ScheduleRow, 0, len(items))
	for _, item := range items {
		place, ok := byID[item.PlaceID]
		if ok {
			item.PlaceName = place.Name
			item.Category = place.Category
			item.Lat = place.Lat
			item.Lng = place.Lng
		} else {
			item.PlaceName = nil
			item.Category = nil
			item.Lat = nil
			item.Lng = nil
		}
		rows = append(rows, item)
	}
	return rows
}

// DateWithinTrip checks the date against the list bounds, both inclusive.
// Dates are YYYY-MM-DD so string order is calendar order.
func DateWithinTrip(date string, list *domain.ListContext) bool {
	if list.StartDate != nil && date < *list.StartDate {
		return false
	}
	if list.EndDate != nil && date > *list.EndDate {
		return false
	}
	return true
}

// BuildComputedLegs attaches normalized metrics and badges in draft order.
func BuildComputedLegs(drafts []domain.LegDraft, normalized map[int]LegMetrics) []domain.ComputedLeg {
	legs := make([]domain.ComputedLeg, 0, len(drafts))
	for _, draft := range drafts {
		m := normalized[draft.Index]
		badges := TravelTimeBadges(m.DurationS)
		legs = append(legs, domain.ComputedLeg{
			LegDraft:        draft,
			DistanceM:       m.DistanceM,
			DurationS:       m.DurationS,
			TravelMinutes:   badges.Minutes,
			TravelTimeShort: badges.Short,
			TravelTimeLong:  badges.Long,
		})
	}
	return legs
}

func buildSummary(seq SequenceResult, legCount int, computed []domain.ComputedLeg) domain.Summary {
	summary := domain.Summary{
		TotalItems:      len(seq.Sequence),
		RouteableItems:  len(seq.RouteableSequence),
		UnroutableItems: len(seq.UnroutableItems),
		LegCount:        legCount,
	}
	if len(computed) == 0 {
		return summary
	}

	var distance, duration int64
	for _, leg := range computed {
		distance += leg.DistanceM
		duration += leg.DurationS
	}
	summary.TotalDistanceM = &distance
	summary.TotalDurationS = &duration
	return summary
}
