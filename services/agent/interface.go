package agent

import (
	"context"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"

	"go.uber.org/zap"
)

// TurnResult is the outcome of processing one utterance.
type TurnResult struct {
	Response       string               `json:"response"`
	NextStep       models.Step          `json:"nextStep"`
	RequiredAction models.Action        `json:"requiresAction,omitempty"`
	SessionData    models.SessionData   `json:"sessionData"`
	Extracted      models.ExtractedInfo `json:"extractedInfo"`
}

// FinalizeInput carries the collaborator results the caller gathered between
// turns (weather lookup, out-of-band seating choice).
type FinalizeInput struct {
	Weather *models.WeatherInfo
	// WeatherSeating is the seating the weather service suggested.
	WeatherSeating string
	// SeatingPreference is an explicit caller-supplied preference; it wins
	// over everything stored in the session.
	SeatingPreference string
}

// FinalizeResult is the persisted booking plus the spoken confirmation.
type FinalizeResult struct {
	Booking  *models.Booking `json:"booking"`
	Response string          `json:"response"`
}

// AgentService drives the booking conversation: it extracts entities from
// each utterance, advances the per-session state machine, and finalizes the
// reservation once enough information has accumulated.
type AgentService interface {
	ProcessTurn(sessionID, text string) (*TurnResult, error)
	UpdateSeatingPreference(sessionID, seating string) (models.SessionData, error)
	CreateBookingFromSession(ctx context.Context, sessionID string, in FinalizeInput) (*FinalizeResult, error)
	ResetSession(sessionID string) bool
	GetSession(sessionID string) (*models.ConversationSession, error)
}

// DefaultAgentService implements AgentService.
type DefaultAgentService struct {
	Store     SessionStore
	Extractor *Extractor
	Responder *Responder
	Repo      bookingRepo.BookingRepository
	Logger    *zap.Logger
}
