package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// ScheduleRepository reads scheduled, non-completed list items for one day.
type ScheduleRepository interface {
	// GetScheduledRows reads items joined with their places in a single query.
	// Returns domain.ErrRelationUnavailable when the joined relation is missing.
	GetScheduledRows(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error)

	// GetScheduledItems reads the items alone; place fields are left nil.
	GetScheduledItems(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error)
}
