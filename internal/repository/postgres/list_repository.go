package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

type listRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewListRepository(db *DB) repository.ListRepository {
	return &listRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetByID возвращает контекст списка; даты поездки отдаются как YYYY-MM-DD
func (r *listRepository) GetByID(ctx context.Context, id string) (*domain.ListContext, error) {
	query := `
		SELECT
			id::text AS id,
			name,
			timezone,
			to_char(start_date, ` + dateFormat + `) AS start_date,
			to_char(end_date, ` + dateFormat + `) AS end_date
		FROM lists
		WHERE id = $1
	`

	var list domain.ListContext
	err := r.db.GetContext(ctx, &list, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get list by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get list %s: %w", id, err)
	}

	return &list, nil
}
