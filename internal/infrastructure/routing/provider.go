package routing

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/infrastructure/mapbox"
)

// NewProvider assembles the configured provider with the shared wrappers.
// Cache is outermost so hits never consume rate limit tokens. cache may be nil.
func NewProvider(cfg *config.Config, cache repository.CacheRepository, logger *zap.Logger) repository.RoutingProvider {
	var base repository.RoutingProvider
	switch cfg.Routing.Provider {
	case config.ProviderMapbox:
		base = mapbox.NewMapboxClient(&cfg.Mapbox, logger)
	case config.ProviderHaversine:
		base = NewHaversineProvider(cfg.Routing.EstimateSpeedMps)
	default:
		logger.Info("Routing provider not configured, previews will report provider_unavailable",
			zap.String("provider", cfg.Routing.Provider))
		return NewUnavailableProvider(ProviderNone)
	}

	provider := NewRateLimitedProvider(base, cfg.Routing.RateLimitRPS, cfg.Routing.RateLimitBurst, logger)
	provider = NewRetryingProvider(provider, cfg.Routing.RetryAttempts, cfg.Routing.RetryBackoff, logger)
	if cfg.Cache.RouteCacheEnabled && cache != nil {
		provider = NewCachedProvider(provider, cache, CacheVariant(cfg), cfg.Cache.RouteCacheTTL, logger)
	}

	logger.Info("Routing provider configured",
		zap.String("provider", base.Name()),
		zap.Float64("rate_limit_rps", cfg.Routing.RateLimitRPS),
		zap.Int("retry_attempts", cfg.Routing.RetryAttempts),
		zap.Bool("cache", cfg.Cache.RouteCacheEnabled && cache != nil))

	return provider
}

// CacheVariant describes the provider settings that affect leg metrics, so a
// profile or speed change never serves legs computed under the old settings.
func CacheVariant(cfg *config.Config) string {
	switch cfg.Routing.Provider {
	case config.ProviderMapbox:
		return cfg.Mapbox.Profile
	case config.ProviderHaversine:
		return strconv.FormatFloat(cfg.Routing.EstimateSpeedMps, 'g', -1, 64)
	default:
		return ""
	}
}
