package agent

import (
	"context"
	"fmt"
	"time"

	"tablebook/models"

	"go.uber.org/zap"
)

// CreateBookingFromSession turns the accumulated session data into a
// persisted booking record. The session is deleted unconditionally after a
// successful create; a crash between the two loses only the in-memory
// session, never the record.
func (s *DefaultAgentService) CreateBookingFromSession(ctx context.Context, sessionID string, in FinalizeInput) (*FinalizeResult, error) {
	if sessionID == "" {
		return nil, ErrMissingInput
	}
	sess := s.Store.Get(sessionID)
	if sess == nil {
		return nil, ErrUnknownSession
	}
	data := sess.Data

	bookingDate := time.Now()
	if data.ParsedDate != nil {
		bookingDate = *data.ParsedDate
	}
	// Minimal past-date repair: a date already behind us moves forward one
	// day. Not a full scheduling resolution.
	if bookingDate.Before(time.Now()) {
		bookingDate = bookingDate.AddDate(0, 0, 1)
	}

	bookingTime := data.TimeText
	if bookingTime == "" {
		bookingTime = "19:00"
	}
	cuisine := data.CuisinePreference
	if cuisine == "" {
		cuisine = "Other"
	}
	seating := resolveSeating(in, data)

	booking := &models.Booking{
		CustomerName:      data.CustomerName,
		NumberOfGuests:    data.NumberOfGuests,
		BookingDate:       bookingDate,
		BookingTime:       bookingTime,
		CuisinePreference: cuisine,
		SpecialRequests:   data.SpecialRequests,
		WeatherInfo:       in.Weather,
		SeatingPreference: seating,
		Status:            models.StatusConfirmed,
	}

	created, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Store.Delete(sessionID)

	s.Logger.Info("booking created from session",
		zap.String("sessionId", sessionID),
		zap.String("bookingId", created.BookingID),
		zap.String("seating", created.SeatingPreference),
	)

	return &FinalizeResult{
		Booking:  created,
		Response: s.Responder.FinalConfirmation(data.CustomerName, created.BookingID, data.DateText, data.TimeText),
	}, nil
}

// resolveSeating applies the seating precedence chain: explicit caller
// preference, then the session's stored preference, then the weather
// suggestion, then no preference.
func resolveSeating(in FinalizeInput, data models.SessionData) string {
	if in.SeatingPreference != "" {
		return in.SeatingPreference
	}
	if data.SeatingPreference != "" {
		return data.SeatingPreference
	}
	if in.WeatherSeating != "" {
		return in.WeatherSeating
	}
	return models.SeatingNoPreference
}
