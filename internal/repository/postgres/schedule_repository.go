package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

type scheduleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewScheduleRepository(db *DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetScheduledRows reads the day from the list_item_details view.
func (r *scheduleRepository) GetScheduledRows(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error) {
	query := `
		SELECT
			item_id::text AS item_id,
			place_id::text AS place_id,
			place_name,
			category,
			to_char(scheduled_date, ` + dateFormat + `) AS scheduled_date,
			to_char(scheduled_start_time, ` + timeFormat + `) AS scheduled_start_time,
			scheduled_order,
			to_char(created_at AT TIME ZONE 'UTC', ` + createdAtFormat + `) AS created_at,
			lat,
			lng
		FROM list_item_details
		WHERE list_id = $1
			AND scheduled_date = $2::date
			AND completed = FALSE
	`

	rows := make([]domain.ScheduleRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query, listID, date); err != nil {
		err = classifyError(err)
		r.logger.Debug("Joined schedule query failed",
			zap.String("list_id", listID),
			zap.String("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("get scheduled rows: %w", err)
	}

	return rows, nil
}

// GetScheduledItems reads list_items alone. Place fields stay nil.
func (r *scheduleRepository) GetScheduledItems(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error) {
	query := `
		SELECT
			id::text AS item_id,
			place_id::text AS place_id,
			to_char(scheduled_date, ` + dateFormat + `) AS scheduled_date,
			to_char(scheduled_start_time, ` + timeFormat + `) AS scheduled_start_time,
			scheduled_order,
			to_char(created_at AT TIME ZONE 'UTC', ` + createdAtFormat + `) AS created_at
		FROM list_items
		WHERE list_id = $1
			AND scheduled_date = $2::date
			AND completed = FALSE
	`

	rows := make([]domain.ScheduleRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query, listID, date); err != nil {
		r.logger.Error("Failed to get scheduled items",
			zap.String("list_id", listID),
			zap.String("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("get scheduled items: %w", err)
	}

	return rows, nil
}
