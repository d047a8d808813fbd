package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// owmEntry is one reading in an OpenWeather response.
type owmEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owmCurrentResponse struct {
	owmEntry
	Name string `json:"name"`
}

type owmForecastResponse struct {
	List []owmEntry `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

func (s *DefaultWeatherService) buildURL(endpoint string, loc Location) string {
	params := url.Values{}
	params.Set("appid", s.APIKey)
	params.Set("units", "metric")
	switch {
	case loc.Lat != 0 || loc.Lon != 0:
		params.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	case loc.City != "":
		params.Set("q", loc.City)
	case s.DefaultCity != "":
		params.Set("q", s.DefaultCity)
	default:
		params.Set("lat", strconv.FormatFloat(s.DefaultLat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(s.DefaultLon, 'f', -1, 64))
	}
	return s.BaseURL + endpoint + "?" + params.Encode()
}

func (s *DefaultWeatherService) fetch(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Current returns the present conditions at the location.
func (s *DefaultWeatherService) Current(ctx context.Context, loc Location) (*Current, error) {
	var data owmCurrentResponse
	if err := s.fetch(ctx, s.buildURL("/weather", loc), &data); err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("weather API returned no conditions")
	}
	return &Current{
		Location:    data.Name,
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Condition:   data.Weather[0].Main,
		Description: data.Weather[0].Description,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Timestamp:   time.Unix(data.Dt, 0),
	}, nil
}

// Forecast returns the conditions expected on the given date. The 5-day
// forecast is searched for an entry on the requested day; when none exists
// the entry closest to noon of that day is used.
func (s *DefaultWeatherService) Forecast(ctx context.Context, date time.Time, loc Location) (*Forecast, error) {
	var data owmForecastResponse
	if err := s.fetch(ctx, s.buildURL("/forecast", loc), &data); err != nil {
		return nil, err
	}
	if len(data.List) == 0 {
		return nil, fmt.Errorf("weather API returned no forecast entries")
	}

	requested := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
	selected, exact := pickEntry(data.List, requested)

	if len(selected.Weather) == 0 {
		return nil, fmt.Errorf("weather API returned no conditions")
	}

	rec := Recommend(selected.Weather[0].Main, selected.Main.Temp, selected.Weather[0].Description)

	return &Forecast{
		Location:         data.City.Name,
		Date:             time.Unix(selected.Dt, 0),
		Temperature:      selected.Main.Temp,
		FeelsLike:        selected.Main.FeelsLike,
		Condition:        selected.Weather[0].Main,
		Description:      selected.Weather[0].Description,
		Humidity:         selected.Main.Humidity,
		WindSpeed:        selected.Wind.Speed,
		Recommendation:   rec.Message,
		SuggestedSeating: rec.Seating,
		ExactMatch:       exact,
	}, nil
}

// pickEntry prefers an entry on the same calendar day as the requested time,
// falling back to the entry with the smallest time distance.
func pickEntry(list []owmEntry, requested time.Time) (owmEntry, bool) {
	ry, rm, rd := requested.Date()
	for _, entry := range list {
		ey, em, ed := time.Unix(entry.Dt, 0).Date()
		if ey == ry && em == rm && ed == rd {
			return entry, true
		}
	}
	closest := list[0]
	best := absDuration(time.Unix(closest.Dt, 0).Sub(requested))
	for _, entry := range list[1:] {
		if d := absDuration(time.Unix(entry.Dt, 0).Sub(requested)); d < best {
			best = d
			closest = entry
		}
	}
	return closest, false
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
