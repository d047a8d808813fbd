package weather

import (
	"context"
	"net/http"
	"time"

	"tablebook/config"

	"go.uber.org/zap"
)

// Location identifies where to look up weather. Lat/Lon take priority over
// City; when both are empty the configured default location is used.
type Location struct {
	City string
	Lat  float64
	Lon  float64
}

// Current is a point-in-time weather reading.
type Current struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Timestamp   time.Time `json:"timestamp"`
}

// Forecast is the conditions expected on a booking date, plus the seating
// suggestion derived from them.
type Forecast struct {
	Location         string    `json:"location"`
	Date             time.Time `json:"date"`
	Temperature      float64   `json:"temperature"`
	FeelsLike        float64   `json:"feelsLike"`
	Condition        string    `json:"condition"`
	Description      string    `json:"description"`
	Humidity         int       `json:"humidity"`
	WindSpeed        float64   `json:"windSpeed"`
	Recommendation   string    `json:"recommendation"`
	SuggestedSeating string    `json:"suggestedSeating"`
	// ExactMatch is false when no forecast entry fell on the requested day
	// and the closest one was used instead.
	ExactMatch bool `json:"-"`
}

// WeatherService looks up current conditions and date forecasts.
type WeatherService interface {
	Current(ctx context.Context, loc Location) (*Current, error)
	Forecast(ctx context.Context, date time.Time, loc Location) (*Forecast, error)
}

// DefaultWeatherService implements WeatherService against the OpenWeather
// API.
type DefaultWeatherService struct {
	APIKey      string
	BaseURL     string
	DefaultCity string
	DefaultLat  float64
	DefaultLon  float64
	Client      *http.Client
	Logger      *zap.Logger
}

// NewDefaultWeatherService builds the service from app configuration.
func NewDefaultWeatherService(logger *zap.Logger) *DefaultWeatherService {
	return &DefaultWeatherService{
		APIKey:      config.AppConfig.OpenWeatherAPIKey,
		BaseURL:     "https://api.openweathermap.org/data/2.5",
		DefaultCity: config.AppConfig.DefaultCity,
		DefaultLat:  config.AppConfig.DefaultLat,
		DefaultLon:  config.AppConfig.DefaultLon,
		Client:      &http.Client{Timeout: 10 * time.Second},
		Logger:      logger,
	}
}
