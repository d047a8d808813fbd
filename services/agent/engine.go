package agent

import (
	"strings"

	"tablebook/models"

	"go.uber.org/zap"
)

// ProcessTurn runs one turn of the conversation: extract entities, merge
// them into the session data, evaluate the current step, and record the
// exchange in the session history. A turn advances the step by at most one;
// fields extracted for later steps are stored and satisfy those steps when
// their turn comes.
func (s *DefaultAgentService) ProcessTurn(sessionID, text string) (*TurnResult, error) {
	if text == "" {
		return nil, ErrMissingInput
	}
	if sessionID == "" {
		sessionID = "default"
	}

	sess := s.Store.GetOrCreate(sessionID)
	sess.History = append(sess.History, models.HistoryEntry{Role: "user", Text: text})

	extracted := s.Extractor.Extract(text)
	mergeExtracted(&sess.Data, extracted)

	handle := stepHandlers[sess.Step]
	res := handle(s, sess, text, extracted)

	sess.Step = res.next
	sess.History = append(sess.History, models.HistoryEntry{Role: "agent", Text: res.reply})

	s.Logger.Debug("processed turn",
		zap.String("sessionId", sessionID),
		zap.String("step", string(sess.Step)),
		zap.String("requiresAction", string(res.action)),
	)

	return &TurnResult{
		Response:       res.reply,
		NextStep:       res.next,
		RequiredAction: res.action,
		SessionData:    sess.Data,
		Extracted:      extracted,
	}, nil
}

// mergeExtracted overwrites session fields mentioned in this turn and leaves
// the rest untouched (last-mention-wins).
func mergeExtracted(data *models.SessionData, ext models.ExtractedInfo) {
	if ext.NumberOfGuests != 0 {
		data.NumberOfGuests = ext.NumberOfGuests
	}
	if ext.CuisinePreference != "" {
		data.CuisinePreference = ext.CuisinePreference
	}
	if ext.DateText != "" && ext.ParsedDate != nil {
		data.DateText = ext.DateText
		data.ParsedDate = ext.ParsedDate
	}
	if ext.TimeText != "" {
		data.TimeText = ext.TimeText
	}
	if len(ext.SpecialRequests) > 0 {
		data.SpecialRequests = strings.Join(ext.SpecialRequests, ", ")
	}
	if ext.CustomerName != "" {
		data.CustomerName = ext.CustomerName
	}
}

// UpdateSeatingPreference records an out-of-band seating choice on the
// session, creating the session if it does not exist yet.
func (s *DefaultAgentService) UpdateSeatingPreference(sessionID, seating string) (models.SessionData, error) {
	if sessionID == "" || seating == "" {
		return models.SessionData{}, ErrMissingInput
	}
	sess := s.Store.GetOrCreate(sessionID)
	sess.Data.SeatingPreference = seating
	s.Logger.Info("seating preference updated",
		zap.String("sessionId", sessionID),
		zap.String("seating", seating),
	)
	return sess.Data, nil
}

// ResetSession deletes the named session. It reports whether a session
// existed.
func (s *DefaultAgentService) ResetSession(sessionID string) bool {
	if s.Store.Get(sessionID) == nil {
		return false
	}
	s.Store.Delete(sessionID)
	return true
}

// GetSession returns the live session for inspection.
func (s *DefaultAgentService) GetSession(sessionID string) (*models.ConversationSession, error) {
	sess := s.Store.Get(sessionID)
	if sess == nil {
		return nil, ErrUnknownSession
	}
	return sess, nil
}
