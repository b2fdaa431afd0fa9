package usecase

import (
	"fmt"
	"math"

	"github.com/itinerary-service/internal/domain"
)

// TravelTimeBadges formats a normalized leg duration. Zero stays "0m"; any
// positive duration shows at least one minute.
func TravelTimeBadges(durationS int64) domain.TravelTimeBadges {
	if durationS <= 0 {
		return domain.TravelTimeBadges{Minutes: 0, Short: "0m", Long: "0 min"}
	}

	minutes := int(math.Floor(float64(durationS)/60 + 0.5))
	if minutes < 1 {
		minutes = 1
	}

	return domain.TravelTimeBadges{
		Minutes: minutes,
		Short:   fmt.Sprintf("%dm", minutes),
		Long:    fmt.Sprintf("%d min", minutes),
	}
}
