package routing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

// cachedProvider serves leg metrics for an already seen stop chain from Redis.
type cachedProvider struct {
	next    repository.RoutingProvider
	cache   repository.CacheRepository
	variant string
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCachedProvider wraps next with a leg metrics cache. Only successful
// results are stored; cache errors fall through to next. variant names the
// provider settings that change its output, e.g. the Mapbox profile.
func NewCachedProvider(next repository.RoutingProvider, cache repository.CacheRepository, variant string, ttl time.Duration, logger *zap.Logger) repository.RoutingProvider {
	return &cachedProvider{
		next:    next,
		cache:   cache,
		variant: variant,
		ttl:     ttl,
		logger:  logger,
	}
}

func (p *cachedProvider) Name() string {
	return p.next.Name()
}

func (p *cachedProvider) RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	key, ok := RouteCacheKey(p.next.Name(), p.variant, req.RouteableSequence)
	if !ok {
		return p.next.RouteLegs(ctx, req)
	}

	legs, err := p.cache.GetRouteLegs(ctx, key)
	if err != nil {
		p.logger.Warn("Route cache read failed", zap.String("key", key), zap.Error(err))
	} else if legs != nil {
		p.logger.Debug("Route cache hit", zap.String("key", key), zap.Int("legs", len(legs)))
		return domain.ProviderSuccess(p.next.Name(), legs)
	}

	result := p.next.RouteLegs(ctx, req)
	if !result.OK {
		return result
	}

	if err := p.cache.SetRouteLegs(ctx, key, result.Legs, p.ttl); err != nil {
		p.logger.Warn("Route cache write failed", zap.String("key", key), zap.Error(err))
	}
	return result
}

// RouteCacheKey hashes the provider variant and the ordered coordinates of the
// chain. ok is false when an item has no coordinates.
func RouteCacheKey(provider, variant string, chain []domain.SequenceItem) (string, bool) {
	h := sha256.New()
	h.Write([]byte(variant))
	h.Write([]byte{'|'})
	buf := make([]byte, 0, 64)
	for _, item := range chain {
		if item.Lat == nil || item.Lng == nil {
			return "", false
		}
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, *item.Lat, 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, *item.Lng, 'g', -1, 64)
		buf = append(buf, ';')
		h.Write(buf)
	}
	return "route:legs:" + provider + ":" + hex.EncodeToString(h.Sum(nil)), true
}
