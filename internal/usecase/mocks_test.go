package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/itinerary-service/internal/domain"
)

// MockListRepository is a mock of ListRepository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) GetByID(ctx context.Context, id string) (*domain.ListContext, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListContext), args.Error(1)
}

// MockScheduleRepository is a mock of ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetScheduledRows(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error) {
	args := m.Called(ctx, listID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleRow), args.Error(1)
}

func (m *MockScheduleRepository) GetScheduledItems(ctx context.Context, listID, date string) ([]domain.ScheduleRow, error) {
	args := m.Called(ctx, listID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleRow), args.Error(1)
}

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Place, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

// MockRoutingProvider is a mock of RoutingProvider
type MockRoutingProvider struct {
	mock.Mock
}

func (m *MockRoutingProvider) Name() string {
	return "mock"
}

func (m *MockRoutingProvider) RouteLegs(ctx context.Context, req domain.RoutingRequest) domain.ProviderResult {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ProviderResult)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
