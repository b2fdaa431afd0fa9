package routing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

const defaultBackoff = 200 * time.Millisecond

// retryingProvider repeats calls whose failure is flagged retryable.
type retryingProvider struct {
	next        repository.RoutingProvider
	maxAttempts int
	backoff     time.Duration
	logger      *zap.Logger
}

// NewRetryingProvider wraps next with retries. maxAttempts counts the first
// call, so values <= 1 return next unchanged.
func NewRetryingProvider(next repository.RoutingProvider, maxAttempts int, backoff time.Duration, logger *zap.Logger) repository.RoutingProvider {
	if maxAttempts <= 1 {
		return next
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		next:        next,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		logger:      logger,
	}
}

func (p *retryingProvider) Name() string {
	return p.next.Name()
}

func (p *retryingProvider) RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	var result domain.ProviderResult

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		result = p.next.RouteLegs(ctx, req)
		if result.OK || result.Code != domain.ProviderCodeError || !result.Retryable {
			return result
		}
		if attempt == p.maxAttempts {
			break
		}

		p.logger.Warn("Routing provider retry",
			zap.String("provider", p.next.Name()),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", p.maxAttempts),
			zap.String("message", result.Message))

		select {
		case <-ctx.Done():
			return result
		case <-time.After(time.Duration(attempt) * p.backoff):
		}
	}

	return result
}
