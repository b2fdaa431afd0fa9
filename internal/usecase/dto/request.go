package dto

import (
	"encoding/json"
	"sort"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/validator"
)

// RoutePreviewRequest - тело запроса на предпросмотр маршрута дня
type RoutePreviewRequest struct {
	Date *string `json:"date" validate:"required,datetime=2006-01-02" example:"2026-03-10"`
	Mode *string `json:"mode,omitempty" validate:"omitempty,oneof=scheduled" example:"scheduled"`
}

var knownRequestFields = map[string]struct{}{
	"date": {},
	"mode": {},
}

// ParseRoutePreviewRequest decodes and validates a preview body. Every invalid
// field is reported, not just the first one.
func ParseRoutePreviewRequest(body []byte) (*domain.CanonicalRequest, []errors.FieldError) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, []errors.FieldError{{Field: "body", Message: "must be a JSON object"}}
	}

	var (
		req       RoutePreviewRequest
		fieldErrs []errors.FieldError
		typeErrs  = make(map[string]bool)
	)

	for key, value := range raw {
		if _, ok := knownRequestFields[key]; !ok {
			fieldErrs = append(fieldErrs, errors.FieldError{Field: key, Message: "unknown field"})
			continue
		}

		var target **string
		switch key {
		case "date":
			target = &req.Date
		case "mode":
			target = &req.Mode
		}
		if err := json.Unmarshal(value, target); err != nil {
			typeErrs[key] = true
			fieldErrs = append(fieldErrs, errors.FieldError{Field: key, Message: "must be a string"})
		}
	}

	if err := validator.Validate(&req); err != nil {
		for _, fe := range validator.FieldErrors(err) {
			if !typeErrs[fe.Field] {
				fieldErrs = append(fieldErrs, fe)
			}
		}
	}

	if len(fieldErrs) > 0 {
		sort.Slice(fieldErrs, func(i, j int) bool {
			return fieldErrs[i].Field < fieldErrs[j].Field
		})
		return nil, fieldErrs
	}

	return &domain.CanonicalRequest{
		Date: *req.Date,
		Mode: domain.PreviewModeScheduled,
	}, nil
}
