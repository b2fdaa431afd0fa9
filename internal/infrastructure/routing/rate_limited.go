package routing

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

// rateLimitedProvider keeps calls to the upstream within its quota.
type rateLimitedProvider struct {
	next    repository.RoutingProvider
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewRateLimitedProvider wraps next with a token bucket. rps <= 0 disables limiting.
func NewRateLimitedProvider(next repository.RoutingProvider, rps float64, burst int, logger *zap.Logger) repository.RoutingProvider {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) Name() string {
	return p.next.Name()
}

func (p *rateLimitedProvider) RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	if err := p.limiter.Wait(ctx); err != nil {
		p.logger.Warn("Rate-limited routing call canceled",
			zap.String("provider", p.next.Name()),
			zap.Error(err))
		return domain.ProviderFailure(p.next.Name(), "routing provider rate limit wait canceled", true)
	}
	return p.next.RouteLegs(ctx, req)
}
