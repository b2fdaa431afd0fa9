package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// RoutingProvider computes distance and duration for every leg draft of a
// request. Failures are reported through the result, never as a panic or error.
type RoutingProvider interface {
	// Name returns the provider identifier echoed back to clients
	Name() string

	// RouteLegs returns one metric per leg draft on success
	RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult
}
