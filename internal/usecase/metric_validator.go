package usecase

import (
	"fmt"
	"math"
	"strconv"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/utils"
)

// maxMetricValue is the largest integer float64 holds exactly. Larger values
// cannot be normalized into int64 metrics or summed into totals safely.
const maxMetricValue = 1 << 53

// LegMetrics - normalized, trusted metrics of one leg
type LegMetrics struct {
	DistanceM int64
	DurationS int64
}

// MetricValidation - outcome of checking provider leg metrics. On success
// Normalized holds exactly one entry per expected leg index; on failure
// Reason is a stable code such as "duplicate_index:1".
type MetricValidation struct {
	OK               bool
	Normalized       map[int]LegMetrics
	Reason           string
	ReceivedLegCount int
}

// ValidateLegMetrics checks provider metrics against the number of leg drafts.
// The first failed check wins.
func ValidateLegMetrics(metrics []domain.ProviderLegMetric, expectedLegCount int) MetricValidation {
	reject := func(reason string) MetricValidation {
		return MetricValidation{Reason: reason, ReceivedLegCount: len(metrics)}
	}

	if len(metrics) != expectedLegCount {
		return reject(fmt.Sprintf("leg_count_mismatch:%d:%d", expectedLegCount, len(metrics)))
	}

	normalized := make(map[int]LegMetrics, expectedLegCount)
	for _, m := range metrics {
		if !utils.IsFinite(m.Index) || m.Index != math.Trunc(m.Index) {
			return reject("invalid_index:" + formatNumber(m.Index))
		}
		if m.Index < 0 || m.Index >= float64(expectedLegCount) {
			return reject("index_out_of_range:" + formatNumber(m.Index))
		}

		index := int(m.Index)
		if _, seen := normalized[index]; seen {
			return reject(fmt.Sprintf("duplicate_index:%d", index))
		}
		if !representable(m.DistanceM) || !representable(m.DurationS) {
			return reject(fmt.Sprintf("non_finite_metric:%d", index))
		}
		if m.DistanceM < 0 || m.DurationS < 0 {
			return reject(fmt.Sprintf("negative_metric:%d", index))
		}

		normalized[index] = LegMetrics{
			DistanceM: normalizeMetric(m.DistanceM),
			DurationS: normalizeMetric(m.DurationS),
		}
	}

	for i := 0; i < expectedLegCount; i++ {
		if _, ok := normalized[i]; !ok {
			return reject(fmt.Sprintf("missing_index:%d", i))
		}
	}

	return MetricValidation{
		OK:               true,
		Normalized:       normalized,
		ReceivedLegCount: len(metrics),
	}
}

// representable reports whether v is finite and within maxMetricValue.
// Sign is checked separately.
func representable(v float64) bool {
	return utils.IsFinite(v) && v <= maxMetricValue
}

// normalizeMetric rounds half up and never yields a negative value.
func normalizeMetric(v float64) int64 {
	rounded := math.Floor(v + 0.5)
	if rounded <= 0 {
		return 0
	}
	return int64(rounded)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
