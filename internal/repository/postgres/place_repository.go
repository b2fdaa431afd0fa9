package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Place, error) {
	places := make([]domain.Place, 0, len(ids))
	if len(ids) == 0 {
		return places, nil
	}

	query := `
		SELECT id::text AS id, name, category, lat, lng
		FROM places
		WHERE id::text = ANY($1)
	`

	if err := r.db.SelectContext(ctx, &places, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get places by IDs", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("get places: %w", err)
	}

	return places, nil
}
