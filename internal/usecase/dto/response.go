package dto

import (
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/errors"
)

// Terminal statuses of a route preview.
const (
	StatusOK                   = "ok"
	StatusInsufficientItems    = "insufficient_items"
	StatusProviderUnavailable  = "provider_unavailable"
	StatusUnauthorized         = "unauthorized"
	StatusInvalidPayload       = "invalid_payload"
	StatusNotFound             = "not_found"
	StatusDateOutsideTripRange = "date_outside_trip_range"
	StatusInternalError        = "internal_error"
)

// RoutePreviewResponse - ответ предпросмотра маршрута (ok, insufficient_items, provider_unavailable)
type RoutePreviewResponse struct {
	Status          string                  `json:"status"`
	Request         domain.CanonicalRequest `json:"request"`
	List            domain.ListContext      `json:"list"`
	Provider        *string                 `json:"provider,omitempty"`
	Message         *string                 `json:"message,omitempty"`
	Sequence        []domain.SequenceItem   `json:"sequence"`
	UnroutableItems []domain.UnroutableItem `json:"unroutable_items"`
	Legs            []Leg                   `json:"legs"`
	Summary         domain.Summary          `json:"summary"`
}

// RoutePreviewErrorResponse - ответ при ошибке предпросмотра
type RoutePreviewErrorResponse struct {
	Status  string                   `json:"status"`
	Request *domain.CanonicalRequest `json:"request"`
	Error   *errors.AppError         `json:"error"`
}

// PreviewOutcome - terminal state of a preview with its HTTP status. Exactly
// one of Response and Failure is set.
type PreviewOutcome struct {
	HTTPStatus int
	Response   *RoutePreviewResponse
	Failure    *RoutePreviewErrorResponse
}

// Status returns the terminal status name.
func (o *PreviewOutcome) Status() string {
	if o.Failure != nil {
		return o.Failure.Status
	}
	return o.Response.Status
}

// Body returns the JSON body to send.
func (o *PreviewOutcome) Body() interface{} {
	if o.Failure != nil {
		return o.Failure
	}
	return o.Response
}

// Leg - leg draft, with metrics and badges once the provider has been trusted
type Leg struct {
	domain.LegDraft
	DistanceM       *int64  `json:"distance_m,omitempty"`
	DurationS       *int64  `json:"duration_s,omitempty"`
	TravelMinutes   *int    `json:"travel_minutes,omitempty"`
	TravelTimeShort *string `json:"travel_time_short,omitempty"`
	TravelTimeLong  *string `json:"travel_time_long,omitempty"`
}

// DraftLegs wraps leg drafts without metrics.
func DraftLegs(drafts []domain.LegDraft) []Leg {
	legs := make([]Leg, 0, len(drafts))
	for _, d := range drafts {
		legs = append(legs, Leg{LegDraft: d})
	}
	return legs
}

// ComputedLegs wraps legs with validated metrics.
func ComputedLegs(computed []domain.ComputedLeg) []Leg {
	legs := make([]Leg, 0, len(computed))
	for _, c := range computed {
		legs = append(legs, Leg{
			LegDraft:        c.LegDraft,
			DistanceM:       &c.DistanceM,
			DurationS:       &c.DurationS,
			TravelMinutes:   &c.TravelMinutes,
			TravelTimeShort: &c.TravelTimeShort,
			TravelTimeLong:  &c.TravelTimeLong,
		})
	}
	return legs
}

// Failed builds the outcome of a failed preview.
func Failed(status string, req *domain.CanonicalRequest, appErr *errors.AppError) *PreviewOutcome {
	return &PreviewOutcome{
		HTTPStatus: appErr.StatusCode,
		Failure: &RoutePreviewErrorResponse{
			Status:  status,
			Request: req,
			Error:   appErr,
		},
	}
}
