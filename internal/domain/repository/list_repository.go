package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// ListRepository определяет методы для чтения списков
type ListRepository interface {
	// GetByID возвращает список по ID или domain.ErrNotFound
	GetByID(ctx context.Context, id string) (*domain.ListContext, error)
}
