package errors

import "net/http"

var (
	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidPayload = New(
		"INVALID_PAYLOAD",
		"Invalid request payload",
		http.StatusBadRequest,
	)

	ErrListNotFound = New(
		"LIST_NOT_FOUND",
		"List not found",
		http.StatusNotFound,
	)

	ErrDateOutsideTripRange = New(
		"DATE_OUTSIDE_TRIP_RANGE",
		"Date is outside the trip date range",
		http.StatusBadRequest,
	)

	ErrInvalidProviderMetrics = New(
		"INTERNAL_SERVER_ERROR",
		"Routing provider returned invalid leg metrics",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrServiceUnavailable = New(
		"SERVICE_UNAVAILABLE",
		"Service dependencies are unavailable",
		http.StatusServiceUnavailable,
	)
)
