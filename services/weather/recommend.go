package weather

import (
	"fmt"
	"strings"

	"tablebook/models"
)

// Recommendation is a seating suggestion derived from forecast conditions,
// with a message suitable for the voice agent to speak.
type Recommendation struct {
	Seating     string  `json:"seatingPreference"`
	Message     string  `json:"message"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

// Recommend maps conditions to a seating suggestion: clear or lightly
// clouded mild weather favours the terrace, rain and temperature extremes
// favour indoors, anything else leaves the choice open.
func Recommend(condition string, temp float64, description string) Recommendation {
	cond := strings.ToLower(condition)
	rec := Recommendation{
		Seating:     models.SeatingIndoor,
		Condition:   cond,
		Temperature: temp,
		Description: description,
	}

	switch {
	case cond == "clear" && temp >= 20 && temp <= 30:
		rec.Seating = models.SeatingOutdoor
		rec.Message = fmt.Sprintf("Perfect weather for outdoor dining! It's %.1f°C with clear skies. Would you like a table on our terrace?", temp)
	case cond == "clouds" && temp >= 18 && temp <= 28:
		rec.Seating = models.SeatingOutdoor
		rec.Message = fmt.Sprintf("Pleasant weather with %s. Temperature is %.1f°C - great for outdoor seating!", description, temp)
	case cond == "rain" || cond == "drizzle" || cond == "thunderstorm":
		rec.Seating = models.SeatingIndoor
		rec.Message = fmt.Sprintf("Looks like %s. I'd recommend our cozy indoor area where you'll be comfortable.", description)
	case temp > 35:
		rec.Seating = models.SeatingIndoor
		rec.Message = fmt.Sprintf("It's going to be quite hot at %.1f°C. Indoor seating is more comfortable.", temp)
	case temp < 15:
		rec.Seating = models.SeatingIndoor
		rec.Message = fmt.Sprintf("Temperature will be %.1f°C - a bit chilly. Indoor seating would be perfect.", temp)
	default:
		rec.Seating = models.SeatingNoPreference
		rec.Message = fmt.Sprintf("Weather looks moderate with %s. Indoor and outdoor seating are available. Any preference?", description)
	}

	return rec
}
