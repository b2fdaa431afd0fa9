package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/repository/postgres"
)

// NewListRepositoryForTest creates a list repository with test database and logger
func NewListRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ListRepository {
	return postgres.NewListRepository(postgres.NewDBForTest(db, logger))
}

// NewScheduleRepositoryForTest creates a schedule repository with test database and logger
func NewScheduleRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ScheduleRepository {
	return postgres.NewScheduleRepository(postgres.NewDBForTest(db, logger))
}

// NewPlaceRepositoryForTest creates a place repository with test database and logger
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	return postgres.NewPlaceRepository(postgres.NewDBForTest(db, logger))
}
