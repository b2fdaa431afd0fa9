package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/usecase"
)

func TestTravelTimeBadges(t *testing.T) {
	tests := []struct {
		duration int64
		want     domain.TravelTimeBadges
	}{
		{0, domain.TravelTimeBadges{Minutes: 0, Short: "0m", Long: "0 min"}},
		{1, domain.TravelTimeBadges{Minutes: 1, Short: "1m", Long: "1 min"}},
		{29, domain.TravelTimeBadges{Minutes: 1, Short: "1m", Long: "1 min"}},
		{89, domain.TravelTimeBadges{Minutes: 1, Short: "1m", Long: "1 min"}},
		{90, domain.TravelTimeBadges{Minutes: 2, Short: "2m", Long: "2 min"}},
		{3600, domain.TravelTimeBadges{Minutes: 60, Short: "60m", Long: "60 min"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.TravelTimeBadges(tt.duration), "duration %d", tt.duration)
	}
}

func TestTravelTimeBadges_NeverZeroForPositiveDuration(t *testing.T) {
	for d := int64(1); d <= 600; d++ {
		badges := usecase.TravelTimeBadges(d)
		assert.GreaterOrEqual(t, badges.Minutes, 1)
		assert.NotEqual(t, "0 min", badges.Long)
	}
}

func TestTravelTimeBadges_StableOnRoundTrip(t *testing.T) {
	for d := int64(0); d <= 7200; d += 7 {
		first := usecase.TravelTimeBadges(d)
		second := usecase.TravelTimeBadges(int64(first.Minutes) * 60)
		assert.Equal(t, first, second, "duration %d", d)
	}
}
