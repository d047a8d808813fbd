package agent

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRepo records the booking passed to Create and fails on demand. The
// remaining repository methods are never reached from the dialogue engine.
type stubRepo struct {
	created   *models.Booking
	createErr error
}

func (r *stubRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	booking.BookingID = "BK17499000001"
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.created = booking
	return booking, nil
}

func (r *stubRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubRepo) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (r *stubRepo) Upcoming(ctx context.Context) ([]models.Booking, error) { return nil, nil }

func (r *stubRepo) UpdateFields(ctx context.Context, bookingID string, fields map[string]interface{}) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubRepo) UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubRepo) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubRepo) Stats(ctx context.Context) (*models.BookingStats, error) { return nil, nil }

func newTestService(repo bookingRepo.BookingRepository) *DefaultAgentService {
	return &DefaultAgentService{
		Store:     NewInMemorySessionStore(),
		Extractor: newTestExtractor(),
		Responder: NewResponder(rand.NewSource(1)),
		Repo:      repo,
		Logger:    zap.NewNop(),
	}
}

func TestProcessTurnEmptyText(t *testing.T) {
	svc := newTestService(&stubRepo{})

	_, err := svc.ProcessTurn("s1", "")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestProcessTurnDefaultSession(t *testing.T) {
	svc := newTestService(&stubRepo{})

	res, err := svc.ProcessTurn("", "hello")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingGuests, res.NextStep)

	sess, err := svc.GetSession("default")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingGuests, sess.Step)
}

func TestProcessTurnAdvancesOneStepAtATime(t *testing.T) {
	svc := newTestService(&stubRepo{})

	// Everything in one utterance still advances only a single step; the
	// stored fields satisfy the later steps as they come up.
	res, err := svc.ProcessTurn("s1", "Table for 4 tomorrow at 7pm, Italian food")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingDate, res.NextStep)
	assert.Equal(t, models.ActionNone, res.RequiredAction)
	assert.Equal(t, 4, res.SessionData.NumberOfGuests)
	assert.Equal(t, "tomorrow", res.SessionData.DateText)
	assert.Equal(t, "19:00", res.SessionData.TimeText)
	assert.Equal(t, "Italian", res.SessionData.CuisinePreference)

	res, err = svc.ProcessTurn("s1", "sounds good")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingTime, res.NextStep)
	assert.Equal(t, models.ActionFetchWeather, res.RequiredAction)

	res, err = svc.ProcessTurn("s1", "as I said")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingCuisine, res.NextStep)

	res, err = svc.ProcessTurn("s1", "yep")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingSpecialReqs, res.NextStep)
}

func TestProcessTurnFullConversation(t *testing.T) {
	svc := newTestService(&stubRepo{})

	steps := []struct {
		text     string
		wantStep models.Step
	}{
		{"hi there", models.StepAwaitingGuests},
		{"2 people", models.StepAwaitingDate},
		{"tomorrow", models.StepAwaitingTime},
		{"19:00", models.StepAwaitingCuisine},
		{"thai please", models.StepAwaitingSpecialReqs},
		{"no, that's all", models.StepAwaitingName},
	}

	for _, step := range steps {
		res, err := svc.ProcessTurn("s1", step.text)
		require.NoError(t, err)
		assert.Equal(t, step.wantStep, res.NextStep, "utterance %q", step.text)
	}

	res, err := svc.ProcessTurn("s1", "my name is alice smith")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingName, res.NextStep)
	assert.Equal(t, models.ActionCreateBooking, res.RequiredAction)
	assert.Equal(t, "Alice Smith", res.SessionData.CustomerName)
	assert.Equal(t, 2, res.SessionData.NumberOfGuests)
	assert.Equal(t, "Thai", res.SessionData.CuisinePreference)
}

func TestProcessTurnSpecialRequestKeywords(t *testing.T) {
	svc := newTestService(&stubRepo{})
	sess := svc.Store.GetOrCreate("s1")
	sess.Step = models.StepAwaitingSpecialReqs

	res, err := svc.ProcessTurn("s1", "it's a birthday, vegetarian menu")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingSpecialReqs, res.NextStep)
	assert.Equal(t, "birthday, vegetarian", res.SessionData.SpecialRequests)
}

func TestProcessTurnFreeformSpecialRequest(t *testing.T) {
	svc := newTestService(&stubRepo{})
	sess := svc.Store.GetOrCreate("s1")
	sess.Step = models.StepAwaitingSpecialReqs

	res, err := svc.ProcessTurn("s1", "please keep the music low")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingSpecialReqs, res.NextStep)
	assert.Equal(t, "please keep the music low", res.SessionData.SpecialRequests)
}

func TestMergeLastMentionWins(t *testing.T) {
	svc := newTestService(&stubRepo{})

	_, err := svc.ProcessTurn("s1", "table for 2")
	require.NoError(t, err)

	res, err := svc.ProcessTurn("s1", "actually make it 5 people, tomorrow")
	require.NoError(t, err)
	assert.Equal(t, 5, res.SessionData.NumberOfGuests)
	assert.Equal(t, "tomorrow", res.SessionData.DateText)
	assert.Equal(t, models.StepAwaitingTime, res.NextStep)
}

func TestUpdateSeatingPreference(t *testing.T) {
	svc := newTestService(&stubRepo{})

	_, err := svc.UpdateSeatingPreference("", models.SeatingOutdoor)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.UpdateSeatingPreference("s1", "")
	assert.ErrorIs(t, err, ErrMissingInput)

	data, err := svc.UpdateSeatingPreference("s1", models.SeatingOutdoor)
	require.NoError(t, err)
	assert.Equal(t, models.SeatingOutdoor, data.SeatingPreference)

	sess, err := svc.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, models.SeatingOutdoor, sess.Data.SeatingPreference)
}

func TestResetSession(t *testing.T) {
	svc := newTestService(&stubRepo{})

	assert.False(t, svc.ResetSession("unknown"))

	_, err := svc.ProcessTurn("s1", "hello")
	require.NoError(t, err)
	assert.True(t, svc.ResetSession("s1"))

	_, err = svc.GetSession("s1")
	assert.ErrorIs(t, err, ErrUnknownSession)

	// A fresh turn after reset starts from the greeting again.
	res, err := svc.ProcessTurn("s1", "hello again")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingGuests, res.NextStep)
	assert.Zero(t, res.SessionData.NumberOfGuests)
}

func TestCreateBookingFromSession(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)

	future := time.Now().AddDate(0, 0, 3)
	sess := svc.Store.GetOrCreate("s1")
	sess.Data = models.SessionData{
		NumberOfGuests:    4,
		CuisinePreference: "Italian",
		DateText:          "friday",
		ParsedDate:        &future,
		TimeText:          "19:30",
		SpecialRequests:   "window",
		CustomerName:      "Alice Smith",
	}

	res, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{
		Weather:        &models.WeatherInfo{Condition: "clear", Temperature: 24},
		WeatherSeating: models.SeatingOutdoor,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "Alice Smith", repo.created.CustomerName)
	assert.Equal(t, 4, repo.created.NumberOfGuests)
	assert.Equal(t, "19:30", repo.created.BookingTime)
	assert.Equal(t, "Italian", repo.created.CuisinePreference)
	assert.Equal(t, models.SeatingOutdoor, repo.created.SeatingPreference)
	assert.Equal(t, models.StatusConfirmed, repo.created.Status)
	assert.Contains(t, res.Response, res.Booking.BookingID)

	// The session is gone once the booking is persisted.
	_, err = svc.GetSession("s1")
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestCreateBookingDefaults(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)

	future := time.Now().AddDate(0, 0, 2)
	sess := svc.Store.GetOrCreate("s1")
	sess.Data = models.SessionData{
		NumberOfGuests: 2,
		DateText:       "tomorrow",
		ParsedDate:     &future,
		CustomerName:   "Bob",
	}

	_, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{})
	require.NoError(t, err)

	assert.Equal(t, "19:00", repo.created.BookingTime)
	assert.Equal(t, "Other", repo.created.CuisinePreference)
	assert.Equal(t, models.SeatingNoPreference, repo.created.SeatingPreference)
}

func TestCreateBookingSeatingPrecedence(t *testing.T) {
	future := time.Now().AddDate(0, 0, 2)

	newSession := func(svc *DefaultAgentService, stored string) {
		sess := svc.Store.GetOrCreate("s1")
		sess.Data = models.SessionData{
			NumberOfGuests:    2,
			ParsedDate:        &future,
			CustomerName:      "Bob",
			SeatingPreference: stored,
		}
	}

	t.Run("explicit preference wins", func(t *testing.T) {
		repo := &stubRepo{}
		svc := newTestService(repo)
		newSession(svc, models.SeatingOutdoor)

		_, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{
			SeatingPreference: models.SeatingIndoor,
			WeatherSeating:    models.SeatingOutdoor,
		})
		require.NoError(t, err)
		assert.Equal(t, models.SeatingIndoor, repo.created.SeatingPreference)
	})

	t.Run("session preference beats weather", func(t *testing.T) {
		repo := &stubRepo{}
		svc := newTestService(repo)
		newSession(svc, models.SeatingIndoor)

		_, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{
			WeatherSeating: models.SeatingOutdoor,
		})
		require.NoError(t, err)
		assert.Equal(t, models.SeatingIndoor, repo.created.SeatingPreference)
	})

	t.Run("weather suggestion as fallback", func(t *testing.T) {
		repo := &stubRepo{}
		svc := newTestService(repo)
		newSession(svc, "")

		_, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{
			WeatherSeating: models.SeatingOutdoor,
		})
		require.NoError(t, err)
		assert.Equal(t, models.SeatingOutdoor, repo.created.SeatingPreference)
	})
}

func TestCreateBookingPastDateMovesForward(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)

	past := time.Now().AddDate(0, 0, -3)
	sess := svc.Store.GetOrCreate("s1")
	sess.Data = models.SessionData{
		NumberOfGuests: 2,
		ParsedDate:     &past,
		CustomerName:   "Bob",
	}

	_, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{})
	require.NoError(t, err)
	assert.Equal(t, past.AddDate(0, 0, 1), repo.created.BookingDate)
}

func TestCreateBookingErrors(t *testing.T) {
	svc := newTestService(&stubRepo{})

	_, err := svc.CreateBookingFromSession(context.Background(), "", FinalizeInput{})
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.CreateBookingFromSession(context.Background(), "unknown", FinalizeInput{})
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestCreateBookingRepoFailureKeepsSession(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("mongo down")}
	svc := newTestService(repo)

	future := time.Now().AddDate(0, 0, 2)
	sess := svc.Store.GetOrCreate("s1")
	sess.Data = models.SessionData{NumberOfGuests: 2, ParsedDate: &future, CustomerName: "Bob"}

	_, err := svc.CreateBookingFromSession(context.Background(), "s1", FinalizeInput{})
	require.Error(t, err)

	_, err = svc.GetSession("s1")
	assert.NoError(t, err)
}
