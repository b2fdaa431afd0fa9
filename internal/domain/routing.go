package domain

// PreviewModeScheduled is the only supported preview mode.
const PreviewModeScheduled = "scheduled"

// CanonicalRequest - validated preview request
type CanonicalRequest struct {
	Date string `json:"date"`
	Mode string `json:"mode"`
}

// Provider failure codes.
const (
	ProviderCodeUnavailable = "provider_unavailable"
	ProviderCodeError       = "provider_error"
)

// RoutingRequest - everything a routing provider gets to compute leg metrics
type RoutingRequest struct {
	Request           CanonicalRequest
	List              ListContext
	Sequence          []SequenceItem
	RouteableSequence []SequenceItem
	Legs              []LegDraft
}

// ProviderLegMetric - untrusted metrics for one leg. Index stays a float so that
// non-integer indices sent by a provider can be detected.
type ProviderLegMetric struct {
	Index     float64 `json:"index"`
	DistanceM float64 `json:"distance_m"`
	DurationS float64 `json:"duration_s"`
}

// ProviderResult - tagged provider reply. When OK is false, Code, Message and
// Retryable describe the failure and Legs is empty.
type ProviderResult struct {
	OK        bool                `json:"ok"`
	Provider  string              `json:"provider"`
	Legs      []ProviderLegMetric `json:"legs,omitempty"`
	Code      string              `json:"code,omitempty"`
	Message   string              `json:"message,omitempty"`
	Retryable bool                `json:"retryable"`
}

// ProviderSuccess builds a successful provider result.
func ProviderSuccess(provider string, legs []ProviderLegMetric) ProviderResult {
	return ProviderResult{OK: true, Provider: provider, Legs: legs}
}

// ProviderUnavailable builds a result for a provider that is not integrated or disabled.
func ProviderUnavailable(provider, message string) ProviderResult {
	return ProviderResult{
		Provider: provider,
		Code:     ProviderCodeUnavailable,
		Message:  message,
	}
}

// ProviderFailure builds a result for a provider call that failed.
func ProviderFailure(provider, message string, retryable bool) ProviderResult {
	return ProviderResult{
		Provider:  provider,
		Code:      ProviderCodeError,
		Message:   message,
		Retryable: retryable,
	}
}
