package models

import "time"

// Step identifies what the dialogue engine is waiting for next.
type Step string

const (
	StepGreeting            Step = "greeting"
	StepAwaitingGuests      Step = "awaiting_guests"
	StepAwaitingDate        Step = "awaiting_date"
	StepAwaitingTime        Step = "awaiting_time"
	StepAwaitingCuisine     Step = "awaiting_cuisine"
	StepAwaitingSpecialReqs Step = "awaiting_special_requests"
	StepAwaitingName        Step = "awaiting_name"
)

// Action directs the caller to perform an out-of-core operation before the
// next turn.
type Action string

const (
	ActionNone          Action = ""
	ActionFetchWeather  Action = "fetch_weather"
	ActionCreateBooking Action = "create_booking"
)

// ExtractedInfo holds the structured fields recognised in a single utterance.
// Every field is optional; a zero value means the utterance did not mention it.
type ExtractedInfo struct {
	NumberOfGuests    int        `json:"numberOfGuests,omitempty"`
	CuisinePreference string     `json:"cuisinePreference,omitempty"`
	DateText          string     `json:"dateText,omitempty"`
	ParsedDate        *time.Time `json:"parsedDate,omitempty"`
	TimeText          string     `json:"timeText,omitempty"` // "HH:MM"
	SpecialRequests   []string   `json:"specialRequests,omitempty"`
	CustomerName      string     `json:"customerName,omitempty"`
}

// SessionData accumulates booking fields across turns. Fields are overwritten
// whenever a later utterance mentions them again (last-mention-wins).
type SessionData struct {
	NumberOfGuests    int        `json:"numberOfGuests,omitempty"`
	CuisinePreference string     `json:"cuisinePreference,omitempty"`
	DateText          string     `json:"dateText,omitempty"`
	ParsedDate        *time.Time `json:"parsedDate,omitempty"`
	TimeText          string     `json:"timeText,omitempty"`
	SpecialRequests   string     `json:"specialRequests,omitempty"`
	CustomerName      string     `json:"customerName,omitempty"`
	SeatingPreference string     `json:"seatingPreference,omitempty"`
}

// HistoryEntry is one turn of the conversation transcript. Kept for audit and
// debugging only; transition logic never reads it.
type HistoryEntry struct {
	Role string `json:"role"` // "user" or "agent"
	Text string `json:"text"`
}

// ConversationSession tracks one in-progress booking conversation.
type ConversationSession struct {
	Step    Step           `json:"step"`
	Data    SessionData    `json:"data"`
	History []HistoryEntry `json:"history"`
}
