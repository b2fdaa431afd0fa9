package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// PlaceRepository определяет методы для работы с местами
type PlaceRepository interface {
	// GetByIDs возвращает места по списку ID; отсутствующие ID пропускаются
	GetByIDs(ctx context.Context, ids []string) ([]domain.Place, error)
}
