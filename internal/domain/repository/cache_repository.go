package repository

import (
	"context"
	"time"

	"github.com/itinerary-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRouteLegs получает метрики участков маршрута из кеша; nil при промахе
	GetRouteLegs(ctx context.Context, key string) ([]domain.ProviderLegMetric, error)

	// SetRouteLegs сохраняет метрики участков маршрута в кеше
	SetRouteLegs(ctx context.Context, key string, legs []domain.ProviderLegMetric, ttl time.Duration) error
}
