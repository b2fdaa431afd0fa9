package routing

import (
	"context"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/utils"
)

// ProviderHaversine - straight-line estimate provider name
const ProviderHaversine = "haversine"

type haversineProvider struct {
	speedMps float64
}

// NewHaversineProvider estimates legs from great-circle distance at a constant speed.
func NewHaversineProvider(speedMps float64) repository.RoutingProvider {
	if speedMps <= 0 {
		speedMps = 1.39
	}
	return &haversineProvider{speedMps: speedMps}
}

func (p *haversineProvider) Name() string {
	return ProviderHaversine
}

func (p *haversineProvider) RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	if err := ctx.Err(); err != nil {
		return domain.ProviderFailure(ProviderHaversine, err.Error(), true)
	}

	byID := make(map[string]domain.SequenceItem, len(req.RouteableSequence))
	for _, item := range req.RouteableSequence {
		byID[item.ItemID] = item
	}

	legs := make([]domain.ProviderLegMetric, 0, len(req.Legs))
	for _, draft := range req.Legs {
		from, okFrom := byID[draft.FromItemID]
		to, okTo := byID[draft.ToItemID]
		if !okFrom || !okTo || !utils.HasCoordinates(from.Lat, from.Lng) || !utils.HasCoordinates(to.Lat, to.Lng) {
			return domain.ProviderFailure(ProviderHaversine, "leg endpoint has no coordinates", false)
		}

		meters := utils.HaversineDistance(*from.Lat, *from.Lng, *to.Lat, *to.Lng) * 1000
		legs = append(legs, domain.ProviderLegMetric{
			Index:     float64(draft.Index),
			DistanceM: meters,
			DurationS: meters / p.speedMps,
		})
	}

	return domain.ProviderSuccess(ProviderHaversine, legs)
}
