package handlers

import (
	"strings"
	"testing"
	"time"

	"tablebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() BookingInput {
	return BookingInput{
		CustomerName:      "Alice Smith",
		NumberOfGuests:    4,
		BookingDate:       time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		BookingTime:       "19:00",
		CuisinePreference: "Italian",
		SeatingPreference: models.SeatingOutdoor,
		ContactPhone:      "987-654-3210",
		ContactEmail:      "alice@example.com",
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	in := validInput()
	assert.Empty(t, in.Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingInput)
		want   string
	}{
		{"missing name", func(in *BookingInput) { in.CustomerName = "  " }, "Customer name is required"},
		{"name too short", func(in *BookingInput) { in.CustomerName = "A" }, "Name must be between 2 and 100 characters"},
		{"name too long", func(in *BookingInput) { in.CustomerName = strings.Repeat("a", 101) }, "Name must be between 2 and 100 characters"},
		{"missing guests", func(in *BookingInput) { in.NumberOfGuests = 0 }, "Number of guests is required"},
		{"too many guests", func(in *BookingInput) { in.NumberOfGuests = 21 }, "Number of guests must be between 1 and 20"},
		{"missing date", func(in *BookingInput) { in.BookingDate = "" }, "Booking date is required"},
		{"bad date format", func(in *BookingInput) { in.BookingDate = "25/12/2025" }, "Invalid date format. Use YYYY-MM-DD"},
		{"past date", func(in *BookingInput) { in.BookingDate = "2020-01-01" }, "Booking date cannot be in the past"},
		{"missing time", func(in *BookingInput) { in.BookingTime = "" }, "Booking time is required"},
		{"bad time", func(in *BookingInput) { in.BookingTime = "25:00" }, "Invalid time format. Use HH:MM (24-hour format)"},
		{"unknown cuisine", func(in *BookingInput) { in.CuisinePreference = "Martian" }, "Invalid cuisine preference"},
		{"oversized special requests", func(in *BookingInput) { in.SpecialRequests = strings.Repeat("x", 501) }, "Special requests cannot exceed 500 characters"},
		{"bad seating", func(in *BookingInput) { in.SeatingPreference = "rooftop" }, "Invalid seating preference"},
		{"short phone", func(in *BookingInput) { in.ContactPhone = "12345" }, "Phone number must be 10 digits"},
		{"bad email", func(in *BookingInput) { in.ContactEmail = "not-an-email" }, "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			assert.Contains(t, in.Validate(), tt.want)
		})
	}
}

func TestValidatePhoneFormatting(t *testing.T) {
	in := validInput()
	in.ContactPhone = "(987) 654-3210"
	assert.Empty(t, in.Validate())
}

func TestValidateOptionalFieldsSkipped(t *testing.T) {
	in := validInput()
	in.CuisinePreference = ""
	in.SeatingPreference = ""
	in.ContactPhone = ""
	in.ContactEmail = ""
	assert.Empty(t, in.Validate())
}

func TestToBookingDefaults(t *testing.T) {
	in := validInput()
	in.CuisinePreference = ""
	in.SeatingPreference = ""
	in.ContactEmail = "  Alice@Example.COM "

	booking, err := in.ToBooking()
	require.NoError(t, err)

	assert.Equal(t, "Other", booking.CuisinePreference)
	assert.Equal(t, models.SeatingNoPreference, booking.SeatingPreference)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, "alice@example.com", booking.ContactEmail)
	assert.Equal(t, in.BookingDate, booking.BookingDate.Format("2006-01-02"))
}

func TestToBookingBadDate(t *testing.T) {
	in := validInput()
	in.BookingDate = "not-a-date"

	_, err := in.ToBooking()
	assert.Error(t, err)
}
