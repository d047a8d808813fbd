package models

import "time"

// Booking status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Seating preference values.
const (
	SeatingIndoor       = "indoor"
	SeatingOutdoor      = "outdoor"
	SeatingNoPreference = "no preference"
)

// Cuisines accepted on a booking record.
var Cuisines = []string{
	"Italian", "Chinese", "Indian", "Mexican", "Japanese",
	"American", "Mediterranean", "Thai", "French", "Other",
}

// Booking represents a confirmed reservation record.
type Booking struct {
	BookingID         string       `bson:"booking_id" json:"bookingId"`
	CustomerName      string       `bson:"customer_name" json:"customerName"`
	NumberOfGuests    int          `bson:"number_of_guests" json:"numberOfGuests"`
	BookingDate       time.Time    `bson:"booking_date" json:"bookingDate"`
	BookingTime       string       `bson:"booking_time" json:"bookingTime"` // "HH:MM", 24-hour
	CuisinePreference string       `bson:"cuisine_preference" json:"cuisinePreference"`
	SpecialRequests   string       `bson:"special_requests" json:"specialRequests"`
	WeatherInfo       *WeatherInfo `bson:"weather_info,omitempty" json:"weatherInfo,omitempty"`
	SeatingPreference string       `bson:"seating_preference" json:"seatingPreference"`
	Status            string       `bson:"status" json:"status"`
	ContactPhone      string       `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail      string       `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	TableNumber       int          `bson:"table_number,omitempty" json:"tableNumber,omitempty"`
	Notes             string       `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time    `bson:"updated_at" json:"updatedAt"`
}

// WeatherInfo is the forecast snapshot attached to a booking.
type WeatherInfo struct {
	Condition   string    `bson:"condition" json:"condition"`
	Temperature float64   `bson:"temperature" json:"temperature"`
	Description string    `bson:"description" json:"description"`
	Humidity    int       `bson:"humidity" json:"humidity"`
	WindSpeed   float64   `bson:"wind_speed" json:"windSpeed"`
	Date        time.Time `bson:"date" json:"date"`
}

// CuisineCount is one bucket of the popular-cuisine aggregation.
type CuisineCount struct {
	Cuisine string `bson:"_id" json:"cuisine"`
	Count   int    `bson:"count" json:"count"`
}

// SeatingCount is one bucket of the seating-preference aggregation.
type SeatingCount struct {
	Seating string `bson:"_id" json:"seating"`
	Count   int    `bson:"count" json:"count"`
}

// BookingStats summarizes booking volume by status plus popularity breakdowns.
type BookingStats struct {
	Total              int            `json:"total"`
	Confirmed          int            `json:"confirmed"`
	Pending            int            `json:"pending"`
	Cancelled          int            `json:"cancelled"`
	Completed          int            `json:"completed"`
	PopularCuisines    []CuisineCount `json:"popularCuisines"`
	SeatingPreferences []SeatingCount `json:"seatingPreferences"`
}
