package agent

import (
	"fmt"
	"math/rand"
	"sync"

	"tablebook/models"
)

// Responder builds the agent's spoken replies. Each intent has one or two
// phrasings picked uniformly at random; the random source is injectable so
// tests can seed it. Wording is cosmetic and callers must not depend on it.
type Responder struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewResponder returns a Responder seeded from the given source.
func NewResponder(src rand.Source) *Responder {
	return &Responder{rnd: rand.New(src)}
}

func (r *Responder) pick(variants ...string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return variants[r.rnd.Intn(len(variants))]
}

func (r *Responder) Greeting() string {
	return r.pick(
		"Hello! Welcome to our restaurant. I'd be happy to help you book a table. How many guests will be dining with us?",
		"Hi there! Thanks for choosing our restaurant. Let me help you with your reservation. How many people will be joining you?",
	)
}

func (r *Responder) ConfirmGuests(guests int) string {
	return r.pick(
		fmt.Sprintf("Perfect! A table for %d. What date would you like to book?", guests),
		fmt.Sprintf("Great! %d guests noted. When would you like to dine with us?", guests),
	)
}

func (r *Responder) ConfirmDate(date string) string {
	return r.pick(
		fmt.Sprintf("Excellent! %s is noted. What time would you prefer?", date),
		fmt.Sprintf("Perfect! I have %s marked down. What time should I reserve for you?", date),
	)
}

func (r *Responder) ConfirmTime(t string) string {
	return r.pick(
		fmt.Sprintf("%s sounds good! Do you have any cuisine preference?", t),
		fmt.Sprintf("Perfect timing at %s! What type of cuisine would you like?", t),
	)
}

func (r *Responder) ConfirmCuisine(cuisine string) string {
	return fmt.Sprintf("Excellent choice! %s cuisine it is. Any special requests?", cuisine)
}

func (r *Responder) RepromptGuests() string {
	return "I need to know how many guests will be dining. How many people?"
}

func (r *Responder) RepromptDate() string {
	return "What date would you like to book? You can say 'today', 'tomorrow', or a specific date like '10 December'."
}

func (r *Responder) RepromptTime() string {
	return "What time would you prefer? For example, '7 PM' or '19:00'."
}

func (r *Responder) RepromptCuisine() string {
	return "What type of cuisine would you prefer? We offer Italian, Chinese, Indian, Mexican, and more."
}

func (r *Responder) SpecialRequestNoted() string {
	return "Noted! Any other special requirements, or should I proceed with the booking?"
}

func (r *Responder) SpecialRequestStored() string {
	return "Got it! Any other requirements, or shall I proceed?"
}

// Summary recaps the accumulated booking data before asking for a name.
func (r *Responder) Summary(data models.SessionData) string {
	cuisine := data.CuisinePreference
	if cuisine == "" {
		cuisine = "Any"
	}
	return fmt.Sprintf(
		"Perfect! Let me confirm:\n• %d guests\n• %s at %s\n• %s cuisine\n\nCould you provide your name to complete the reservation?",
		data.NumberOfGuests, data.DateText, data.TimeText, cuisine,
	)
}

func (r *Responder) FinalConfirmation(name, bookingID, date, t string) string {
	return fmt.Sprintf(
		"Excellent! Your booking is confirmed, %s! Booking ID: %s. We look forward to seeing you on %s at %s. Is there anything else I can help you with?",
		name, bookingID, date, t,
	)
}

func (r *Responder) Fallback() string {
	return r.pick(
		"I'm sorry, I didn't quite catch that. Could you please repeat?",
		"Could you clarify that for me?",
	)
}
