package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tablebook/models"
)

var (
	timeFormatRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	phoneRe      = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStripRe = regexp.MustCompile(`[-()\s]`)
)

// BookingInput is the request body for creating a booking directly.
type BookingInput struct {
	CustomerName      string              `json:"customerName"`
	NumberOfGuests    int                 `json:"numberOfGuests"`
	BookingDate       string              `json:"bookingDate"` // "YYYY-MM-DD"
	BookingTime       string              `json:"bookingTime"` // "HH:MM"
	CuisinePreference string              `json:"cuisinePreference"`
	SpecialRequests   string              `json:"specialRequests"`
	WeatherInfo       *models.WeatherInfo `json:"weatherInfo"`
	SeatingPreference string              `json:"seatingPreference"`
	ContactPhone      string              `json:"contactPhone"`
	ContactEmail      string              `json:"contactEmail"`
	Notes             string              `json:"notes"`
}

// Validate checks the input against the booking rules and returns a list of
// human-readable problems. An empty list means the input is acceptable.
func (in *BookingInput) Validate() []string {
	var details []string

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		details = append(details, "Customer name is required")
	} else if len(name) < 2 || len(name) > 100 {
		details = append(details, "Name must be between 2 and 100 characters")
	}

	if in.NumberOfGuests == 0 {
		details = append(details, "Number of guests is required")
	} else if in.NumberOfGuests < 1 || in.NumberOfGuests > 20 {
		details = append(details, "Number of guests must be between 1 and 20")
	}

	if in.BookingDate == "" {
		details = append(details, "Booking date is required")
	} else if date, err := time.Parse("2006-01-02", in.BookingDate); err != nil {
		details = append(details, "Invalid date format. Use YYYY-MM-DD")
	} else {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			details = append(details, "Booking date cannot be in the past")
		}
	}

	if in.BookingTime == "" {
		details = append(details, "Booking time is required")
	} else if !timeFormatRe.MatchString(in.BookingTime) {
		details = append(details, "Invalid time format. Use HH:MM (24-hour format)")
	}

	if in.CuisinePreference != "" && !contains(models.Cuisines, in.CuisinePreference) {
		details = append(details, "Invalid cuisine preference")
	}

	if len(in.SpecialRequests) > 500 {
		details = append(details, "Special requests cannot exceed 500 characters")
	}

	validSeating := []string{models.SeatingIndoor, models.SeatingOutdoor, models.SeatingNoPreference}
	if in.SeatingPreference != "" && !contains(validSeating, in.SeatingPreference) {
		details = append(details, "Invalid seating preference")
	}

	if in.ContactPhone != "" && !phoneRe.MatchString(phoneStripRe.ReplaceAllString(in.ContactPhone, "")) {
		details = append(details, "Phone number must be 10 digits")
	}

	if in.ContactEmail != "" && !emailRe.MatchString(in.ContactEmail) {
		details = append(details, "Invalid email format")
	}

	return details
}

// ToBooking converts validated input into a booking record.
func (in *BookingInput) ToBooking() (*models.Booking, error) {
	date, err := time.Parse("2006-01-02", in.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date: %w", err)
	}
	status := models.StatusConfirmed
	cuisine := in.CuisinePreference
	if cuisine == "" {
		cuisine = "Other"
	}
	seating := in.SeatingPreference
	if seating == "" {
		seating = models.SeatingNoPreference
	}
	return &models.Booking{
		CustomerName:      strings.TrimSpace(in.CustomerName),
		NumberOfGuests:    in.NumberOfGuests,
		BookingDate:       date,
		BookingTime:       in.BookingTime,
		CuisinePreference: cuisine,
		SpecialRequests:   in.SpecialRequests,
		WeatherInfo:       in.WeatherInfo,
		SeatingPreference: seating,
		Status:            status,
		ContactPhone:      in.ContactPhone,
		ContactEmail:      strings.ToLower(strings.TrimSpace(in.ContactEmail)),
		Notes:             in.Notes,
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
