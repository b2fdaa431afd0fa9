package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	apperrors "github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/usecase"
	"github.com/itinerary-service/internal/usecase/dto"
)

const (
	testUserID = "user-1"
	testListID = "7f9c2f4e-3b1a-4c55-9a0e-0d7f1c2b3a4d"
	testDate   = "2026-03-10"
)

type previewFixture struct {
	lists     *MockListRepository
	schedule  *MockScheduleRepository
	places    *MockPlaceRepository
	provider  *MockRoutingProvider
	uc        *usecase.RoutePreviewUseCase
	ctx       context.Context
	unbounded *domain.ListContext
}

func newPreviewFixture() *previewFixture {
	f := &previewFixture{
		lists:    &MockListRepository{},
		schedule: &MockScheduleRepository{},
		places:   &MockPlaceRepository{},
		provider: &MockRoutingProvider{},
		ctx:      context.Background(),
		unbounded: &domain.ListContext{
			ID:   testListID,
			Name: "Barcelona weekend",
		},
	}
	f.uc = usecase.NewRoutePreviewUseCase(f.lists, f.schedule, f.places, f.provider, zap.NewNop(), time.Second)
	return f
}

func (f *previewFixture) assertExpectations(t *testing.T) {
	f.lists.AssertExpectations(t)
	f.schedule.AssertExpectations(t)
	f.places.AssertExpectations(t)
	f.provider.AssertExpectations(t)
}

func threeSlotRows() []domain.ScheduleRow {
	return []domain.ScheduleRow{
		newRow("evening", at("19:00:00"), coordinates(41.40, 2.17)),
		newRow("morning", at("09:00:00"), coordinates(41.38, 2.17)),
		newRow("afternoon", at("14:00:00"), coordinates(41.39, 2.16)),
	}
}

func TestRoutePreview_Unauthorized(t *testing.T) {
	f := newPreviewFixture()

	out := f.uc.Preview(f.ctx, "", testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusUnauthorized, out.HTTPStatus)
	require.NotNil(t, out.Failure)
	assert.Equal(t, dto.StatusUnauthorized, out.Failure.Status)
	f.assertExpectations(t)
}

func TestRoutePreview_InvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		listID string
		body   string
		fields []string
	}{
		{"missing date", testListID, `{}`, []string{"date"}},
		{"bad calendar date", testListID, `{"date":"2026-02-30"}`, []string{"date"}},
		{"wrong mode", testListID, `{"date":"2026-03-10","mode":"optimized"}`, []string{"mode"}},
		{"date not a string", testListID, `{"date":20260310}`, []string{"date"}},
		{"every invalid field", testListID, `{"date":"tomorrow","mode":"x","extra":1}`, []string{"date", "extra", "mode"}},
		{"not an object", testListID, `[1,2]`, []string{"body"}},
		{"malformed json", testListID, `{"date":`, []string{"body"}},
		{"bad list id", "not-a-uuid", `{"date":"2026-03-10"}`, []string{"list_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPreviewFixture()

			out := f.uc.Preview(f.ctx, testUserID, tt.listID, []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, out.HTTPStatus)
			require.NotNil(t, out.Failure)
			assert.Equal(t, dto.StatusInvalidPayload, out.Failure.Status)
			assert.Nil(t, out.Failure.Request)

			fields := out.Failure.Error.Details["fields"]
			require.NotNil(t, fields)
			var names []string
			for _, fe := range fields.([]apperrors.FieldError) {
				names = append(names, fe.Field)
			}
			assert.Equal(t, tt.fields, names)
			f.assertExpectations(t)
		})
	}
}

func TestRoutePreview_ListNotFound(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(nil, domain.ErrNotFound)

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusNotFound, out.HTTPStatus)
	assert.Equal(t, dto.StatusNotFound, out.Status())
	require.NotNil(t, out.Failure.Request)
	assert.Equal(t, domain.CanonicalRequest{Date: testDate, Mode: "scheduled"}, *out.Failure.Request)
	f.assertExpectations(t)
}

func TestRoutePreview_ListStoreError(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(nil, errors.New("connection reset"))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusInternalServerError, out.HTTPStatus)
	assert.Equal(t, dto.StatusInternalError, out.Status())
	f.assertExpectations(t)
}

func TestRoutePreview_DateOutsideTripRange(t *testing.T) {
	day := "2026-03-10"
	list := &domain.ListContext{ID: testListID, Name: "Day trip", StartDate: &day, EndDate: &day}

	t.Run("after end date", func(t *testing.T) {
		f := newPreviewFixture()
		f.lists.On("GetByID", f.ctx, testListID).Return(list, nil)

		out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-11"}`))

		assert.Equal(t, http.StatusBadRequest, out.HTTPStatus)
		assert.Equal(t, dto.StatusDateOutsideTripRange, out.Status())
		assert.Equal(t, "2026-03-11", out.Failure.Request.Date)
		f.assertExpectations(t)
	})

	t.Run("before start date", func(t *testing.T) {
		f := newPreviewFixture()
		f.lists.On("GetByID", f.ctx, testListID).Return(list, nil)

		out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-09"}`))

		assert.Equal(t, dto.StatusDateOutsideTripRange, out.Status())
		f.assertExpectations(t)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		f := newPreviewFixture()
		f.lists.On("GetByID", f.ctx, testListID).Return(list, nil)
		f.schedule.On("GetScheduledRows", f.ctx, testListID, day).Return([]domain.ScheduleRow{}, nil)

		out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

		assert.Equal(t, dto.StatusInsufficientItems, out.Status())
		f.assertExpectations(t)
	})
}

func TestRoutePreview_InsufficientItems(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).Return([]domain.ScheduleRow{
		newRow("only", at("09:00:00")),
		newRow("no-coords", noCoordinates()),
	}, nil)

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10","mode":"scheduled"}`))

	assert.Equal(t, http.StatusOK, out.HTTPStatus)
	require.NotNil(t, out.Response)
	resp := out.Response
	assert.Equal(t, dto.StatusInsufficientItems, resp.Status)
	assert.Equal(t, []dto.Leg{}, resp.Legs)
	assert.Len(t, resp.Sequence, 2)
	assert.Len(t, resp.UnroutableItems, 1)
	assert.Equal(t, 1, resp.Summary.RouteableItems)
	assert.Equal(t, 0, resp.Summary.LegCount)
	assert.Nil(t, resp.Summary.TotalDistanceM)
	assert.Nil(t, resp.Summary.TotalDurationS)
	assert.Nil(t, resp.Provider)
	f.assertExpectations(t)
}

func TestRoutePreview_ProviderUnavailable(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).Return(threeSlotRows(), nil)
	f.provider.On("RouteLegs", mock.Anything, mock.MatchedBy(func(req domain.RoutingRequest) bool {
		return len(req.Legs) == 2 && len(req.RouteableSequence) == 3 && req.List.ID == testListID
	})).Return(domain.ProviderUnavailable("none", "Routing provider is not configured"))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusNotImplemented, out.HTTPStatus)
	resp := out.Response
	require.NotNil(t, resp)
	assert.Equal(t, dto.StatusProviderUnavailable, resp.Status)
	assert.Equal(t, "none", *resp.Provider)
	assert.Equal(t, "Routing provider is not configured", *resp.Message)
	require.Len(t, resp.Legs, 2)
	assert.Equal(t, "morning", resp.Legs[0].FromItemID)
	assert.Equal(t, "afternoon", resp.Legs[0].ToItemID)
	assert.Equal(t, "afternoon", resp.Legs[1].FromItemID)
	assert.Equal(t, "evening", resp.Legs[1].ToItemID)
	assert.Nil(t, resp.Legs[0].DistanceM)
	assert.Equal(t, 2, resp.Summary.LegCount)
	assert.Nil(t, resp.Summary.TotalDurationS)
	f.assertExpectations(t)
}

func TestRoutePreview_ProviderError(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).Return(threeSlotRows(), nil)
	f.provider.On("RouteLegs", mock.Anything, mock.Anything).
		Return(domain.ProviderFailure("mapbox", "mapbox API error: status 503", true))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusInternalServerError, out.HTTPStatus)
	require.NotNil(t, out.Failure)
	assert.Equal(t, dto.StatusInternalError, out.Failure.Status)
	assert.Equal(t, "mapbox API error: status 503", out.Failure.Error.Message)
	f.assertExpectations(t)
}

func TestRoutePreview_InvalidMetrics(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).Return(threeSlotRows(), nil)
	f.provider.On("RouteLegs", mock.Anything, mock.Anything).
		Return(domain.ProviderSuccess("mapbox", []domain.ProviderLegMetric{
			metric(0, 800, 600),
			metric(0, 900, 700),
		}))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusInternalServerError, out.HTTPStatus)
	require.NotNil(t, out.Failure)
	assert.Nil(t, out.Response)
	assert.Equal(t, dto.StatusInternalError, out.Failure.Status)
	assert.Equal(t, "Routing provider returned invalid leg metrics", out.Failure.Error.Message)
	assert.NotContains(t, out.Failure.Error.Message, "duplicate_index")
	f.assertExpectations(t)
}

func TestRoutePreview_OK(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).Return(
		append(threeSlotRows(), newRow("lost", noCoordinates())), nil)
	f.provider.On("RouteLegs", mock.Anything, mock.Anything).
		Return(domain.ProviderSuccess("mapbox", []domain.ProviderLegMetric{
			metric(1, 2400.4, 1799.6),
			metric(0, 1200.6, 30),
		}))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusOK, out.HTTPStatus)
	resp := out.Response
	require.NotNil(t, resp)
	assert.Equal(t, dto.StatusOK, resp.Status)
	assert.Equal(t, "mapbox", *resp.Provider)
	assert.Equal(t, domain.CanonicalRequest{Date: testDate, Mode: "scheduled"}, resp.Request)
	assert.Equal(t, "Barcelona weekend", resp.List.Name)

	require.Len(t, resp.Legs, 2)
	assert.Equal(t, 0, resp.Legs[0].Index)
	assert.Equal(t, int64(1201), *resp.Legs[0].DistanceM)
	assert.Equal(t, int64(30), *resp.Legs[0].DurationS)
	assert.Equal(t, "1m", *resp.Legs[0].TravelTimeShort)
	assert.Equal(t, int64(2400), *resp.Legs[1].DistanceM)
	assert.Equal(t, int64(1800), *resp.Legs[1].DurationS)
	assert.Equal(t, "30 min", *resp.Legs[1].TravelTimeLong)

	assert.Equal(t, 4, resp.Summary.TotalItems)
	assert.Equal(t, 3, resp.Summary.RouteableItems)
	assert.Equal(t, 1, resp.Summary.UnroutableItems)
	assert.Equal(t, 2, resp.Summary.LegCount)
	assert.Equal(t, int64(3601), *resp.Summary.TotalDistanceM)
	assert.Equal(t, int64(1830), *resp.Summary.TotalDurationS)
	f.assertExpectations(t)
}

func TestRoutePreview_RelationFallback(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).
		Return(nil, errors.Join(domain.ErrRelationUnavailable, errors.New(`relation "list_item_details" does not exist`)))

	bare := func(id, placeID, start string) domain.ScheduleRow {
		return domain.ScheduleRow{
			ItemID:             id,
			PlaceID:            placeID,
			ScheduledDate:      testDate,
			ScheduledStartTime: strPtr(start),
			CreatedAt:          "2026-03-01T10:00:00.000000Z",
		}
	}
	f.schedule.On("GetScheduledItems", f.ctx, testListID, testDate).Return([]domain.ScheduleRow{
		bare("i1", "p1", "09:00:00"),
		bare("i2", "p2", "14:00:00"),
		bare("i3", "p1", "19:00:00"),
		bare("i4", "gone", "19:00:00"),
	}, nil)
	f.places.On("GetByIDs", f.ctx, []string{"p1", "p2", "gone"}).Return([]domain.Place{
		{ID: "p1", Name: strPtr("Cafe"), Category: strPtr("Coffee"), Lat: floatPtr(41.38), Lng: floatPtr(2.17)},
		{ID: "p2", Name: strPtr("Park"), Lat: floatPtr(41.41), Lng: floatPtr(2.15)},
	}, nil)
	f.provider.On("RouteLegs", mock.Anything, mock.Anything).
		Return(domain.ProviderSuccess("haversine", []domain.ProviderLegMetric{
			metric(0, 100, 60),
			metric(1, 100, 60),
		}))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	require.NotNil(t, out.Response)
	resp := out.Response
	assert.Equal(t, dto.StatusOK, resp.Status)
	assert.Equal(t, 4, resp.Summary.TotalItems)
	assert.Equal(t, 3, resp.Summary.RouteableItems)
	require.Len(t, resp.UnroutableItems, 1)
	assert.Equal(t, "i4", resp.UnroutableItems[0].ItemID)
	assert.Nil(t, resp.UnroutableItems[0].PlaceName)
	assert.Equal(t, "Cafe", *resp.Sequence[0].PlaceName)
	f.assertExpectations(t)
}

func TestRoutePreview_ScheduleStoreError(t *testing.T) {
	f := newPreviewFixture()
	f.lists.On("GetByID", f.ctx, testListID).Return(f.unbounded, nil)
	f.schedule.On("GetScheduledRows", f.ctx, testListID, testDate).Return(nil, errors.New("timeout"))

	out := f.uc.Preview(f.ctx, testUserID, testListID, []byte(`{"date":"2026-03-10"}`))

	assert.Equal(t, http.StatusInternalServerError, out.HTTPStatus)
	assert.Equal(t, dto.StatusInternalError, out.Status())
	f.schedule.AssertNotCalled(t, "GetScheduledItems", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestHydrateScheduleRows(t *testing.T) {
	items := []domain.ScheduleRow{
		{ItemID: "i1", PlaceID: "p1", PlaceName: strPtr("stale")},
		{ItemID: "i2", PlaceID: "missing", PlaceName: strPtr("stale")},
	}
	places := []domain.Place{{ID: "p1", Name: strPtr("Fresh"), Lat: floatPtr(1), Lng: floatPtr(2)}}

	rows := usecase.HydrateScheduleRows(items, places)

	require.Len(t, rows, 2)
	assert.Equal(t, "Fresh", *rows[0].PlaceName)
	assert.Equal(t, 1.0, *rows[0].Lat)
	assert.Nil(t, rows[1].PlaceName)
	assert.Nil(t, rows[1].Lat)
}

func TestDateWithinTrip(t *testing.T) {
	start, end := "2026-03-10", "2026-03-12"

	assert.True(t, usecase.DateWithinTrip("2030-01-01", &domain.ListContext{}))
	assert.True(t, usecase.DateWithinTrip("2026-03-10", &domain.ListContext{StartDate: &start, EndDate: &end}))
	assert.True(t, usecase.DateWithinTrip("2026-03-12", &domain.ListContext{StartDate: &start, EndDate: &end}))
	assert.False(t, usecase.DateWithinTrip("2026-03-13", &domain.ListContext{StartDate: &start, EndDate: &end}))
	assert.False(t, usecase.DateWithinTrip("2026-03-09", &domain.ListContext{StartDate: &start}))
	assert.True(t, usecase.DateWithinTrip("2026-03-09", &domain.ListContext{EndDate: &end}))
}
