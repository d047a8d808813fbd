package agent

import (
	"strings"

	"tablebook/models"
)

type stepResult struct {
	reply  string
	next   models.Step
	action models.Action
}

// stepHandler evaluates one step's entry condition against the session data
// and this turn's extraction, producing the reply and the single next step.
type stepHandler func(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult

var stepHandlers = map[models.Step]stepHandler{
	models.StepGreeting:            stepGreeting,
	models.StepAwaitingGuests:      stepAwaitingGuests,
	models.StepAwaitingDate:        stepAwaitingDate,
	models.StepAwaitingTime:        stepAwaitingTime,
	models.StepAwaitingCuisine:     stepAwaitingCuisine,
	models.StepAwaitingSpecialReqs: stepAwaitingSpecialRequests,
	models.StepAwaitingName:        stepAwaitingName,
}

// stepGreeting only tests for a guest count in this turn's extraction; any
// other fields mentioned are stored but evaluated on later turns.
func stepGreeting(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	if ext.NumberOfGuests != 0 {
		return stepResult{
			reply: s.Responder.ConfirmGuests(ext.NumberOfGuests),
			next:  models.StepAwaitingDate,
		}
	}
	return stepResult{
		reply: s.Responder.Greeting(),
		next:  models.StepAwaitingGuests,
	}
}

func stepAwaitingGuests(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	if sess.Data.NumberOfGuests != 0 {
		return stepResult{
			reply: s.Responder.ConfirmGuests(sess.Data.NumberOfGuests),
			next:  models.StepAwaitingDate,
		}
	}
	return stepResult{
		reply: s.Responder.RepromptGuests(),
		next:  models.StepAwaitingGuests,
	}
}

func stepAwaitingDate(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	if sess.Data.DateText != "" && sess.Data.ParsedDate != nil {
		return stepResult{
			reply:  s.Responder.ConfirmDate(sess.Data.DateText),
			next:   models.StepAwaitingTime,
			action: models.ActionFetchWeather,
		}
	}
	return stepResult{
		reply: s.Responder.RepromptDate(),
		next:  models.StepAwaitingDate,
	}
}

func stepAwaitingTime(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	if sess.Data.TimeText != "" {
		return stepResult{
			reply: s.Responder.ConfirmTime(sess.Data.TimeText),
			next:  models.StepAwaitingCuisine,
		}
	}
	return stepResult{
		reply: s.Responder.RepromptTime(),
		next:  models.StepAwaitingTime,
	}
}

func stepAwaitingCuisine(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	if sess.Data.CuisinePreference != "" {
		return stepResult{
			reply: s.Responder.ConfirmCuisine(sess.Data.CuisinePreference),
			next:  models.StepAwaitingSpecialReqs,
		}
	}
	return stepResult{
		reply: s.Responder.RepromptCuisine(),
		next:  models.StepAwaitingCuisine,
	}
}

// stepAwaitingSpecialRequests advances on a "no"/"proceed" substring,
// case-insensitive, so "no nuts please" also advances. Any other utterance
// is stored as the special-request text: extracted keywords joined, or the
// raw utterance verbatim when nothing matched.
func stepAwaitingSpecialRequests(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "no") || strings.Contains(lower, "proceed") {
		return stepResult{
			reply: s.Responder.Summary(sess.Data),
			next:  models.StepAwaitingName,
		}
	}
	if len(ext.SpecialRequests) > 0 {
		// Already merged into sess.Data by mergeExtracted.
		return stepResult{
			reply: s.Responder.SpecialRequestNoted(),
			next:  models.StepAwaitingSpecialReqs,
		}
	}
	sess.Data.SpecialRequests = text
	return stepResult{
		reply: s.Responder.SpecialRequestStored(),
		next:  models.StepAwaitingSpecialReqs,
	}
}

// stepAwaitingName always completes: the extracted name or, failing that,
// the trimmed raw utterance becomes the customer name, and the caller is
// directed to create the booking.
func stepAwaitingName(s *DefaultAgentService, sess *models.ConversationSession, text string, ext models.ExtractedInfo) stepResult {
	name := ext.CustomerName
	if name == "" {
		name = strings.TrimSpace(text)
	}
	sess.Data.CustomerName = name
	return stepResult{
		next:   models.StepAwaitingName,
		action: models.ActionCreateBooking,
	}
}
