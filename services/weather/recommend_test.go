package weather

import (
	"testing"

	"tablebook/models"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		temp      float64
		want      string
	}{
		{"clear and mild", "Clear", 25, models.SeatingOutdoor},
		{"clear but scorching", "Clear", 38, models.SeatingIndoor},
		{"clear but cold", "Clear", 10, models.SeatingIndoor},
		{"light clouds", "Clouds", 22, models.SeatingOutdoor},
		{"clouds outside comfort band", "Clouds", 32, models.SeatingNoPreference},
		{"rain", "Rain", 22, models.SeatingIndoor},
		{"drizzle", "Drizzle", 20, models.SeatingIndoor},
		{"thunderstorm", "Thunderstorm", 26, models.SeatingIndoor},
		{"heat wave", "Haze", 36, models.SeatingIndoor},
		{"chilly", "Mist", 8, models.SeatingIndoor},
		{"moderate and unclassified", "Haze", 22, models.SeatingNoPreference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.condition, tt.temp, "some description")
			assert.Equal(t, tt.want, rec.Seating)
			assert.NotEmpty(t, rec.Message)
			assert.Equal(t, tt.temp, rec.Temperature)
		})
	}
}

func TestRecommendBoundaries(t *testing.T) {
	// The comfort bands are inclusive at both ends.
	assert.Equal(t, models.SeatingOutdoor, Recommend("clear", 20, "").Seating)
	assert.Equal(t, models.SeatingOutdoor, Recommend("clear", 30, "").Seating)
	assert.Equal(t, models.SeatingOutdoor, Recommend("clouds", 18, "").Seating)
	assert.Equal(t, models.SeatingOutdoor, Recommend("clouds", 28, "").Seating)
	assert.Equal(t, models.SeatingNoPreference, Recommend("clear", 31, "").Seating)
	assert.Equal(t, models.SeatingNoPreference, Recommend("clear", 19, "").Seating)
}
