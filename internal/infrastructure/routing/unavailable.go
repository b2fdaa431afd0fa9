package routing

import (
	"context"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

// ProviderNone is the name reported when no routing integration is configured.
const ProviderNone = "none"

type unavailableProvider struct {
	name string
}

// NewUnavailableProvider returns a provider that always reports provider_unavailable.
func NewUnavailableProvider(name string) repository.RoutingProvider {
	return &unavailableProvider{name: name}
}

func (p *unavailableProvider) Name() string {
	return p.name
}

func (p *unavailableProvider) RouteLegs(_ context.Context, _ domain.RoutingRequest) domain.ProviderResult {
	return domain.ProviderUnavailable(p.name, "Travel times are coming soon")
}
