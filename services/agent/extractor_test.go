package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday, so weekday phrases resolve deterministically.
var fixedNow = time.Date(2025, time.June, 11, 10, 30, 0, 0, time.UTC)

func newTestExtractor() *Extractor {
	return &Extractor{Now: func() time.Time { return fixedNow }}
}

func TestExtractGuests(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"a table for 4 people please", 4},
		{"we are two guests", 2},
		{"table for six", 6},
		{"party of 8", 8},
		{"twenty people", 20},
		{"1 person", 1},
		{"no guests mentioned here", 0},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			info := e.Extract(tt.text)
			assert.Equal(t, tt.want, info.NumberOfGuests)
		})
	}
}

func TestExtractDates(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		text     string
		wantText string
		wantDate time.Time
	}{
		{"book for tomorrow", "tomorrow", day(2025, time.June, 12)},
		{"the day after tomorrow works", "day after tomorrow", day(2025, time.June, 13)},
		{"today please", "today", day(2025, time.June, 11)},
		{"this friday", "this friday", day(2025, time.June, 13)},
		{"next monday", "next monday", day(2025, time.June, 16)},
		// The named day is today, so it rolls forward a full week.
		{"wednesday", "wednesday", day(2025, time.June, 18)},
		{"on the 10th december", "10th december", day(2025, time.December, 10)},
		{"december 10 2026", "december 10 2026", day(2026, time.December, 10)},
		{"how about 12/25", "12/25", day(2025, time.December, 25)},
		{"maybe 3-15-26", "3-15-26", day(2026, time.March, 15)},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			info := e.Extract(tt.text)
			require.NotNil(t, info.ParsedDate)
			assert.Equal(t, tt.wantText, info.DateText)
			assert.Equal(t, tt.wantDate, *info.ParsedDate)
		})
	}
}

func TestExtractDateAbsent(t *testing.T) {
	info := newTestExtractor().Extract("just a table please")
	assert.Empty(t, info.DateText)
	assert.Nil(t, info.ParsedDate)
}

func TestExtractTimes(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"at 7 pm", "19:00"},
		{"7:30 pm works", "19:30"},
		{"around seven pm", "19:00"},
		{"12 pm sharp", "12:00"},
		{"12 am", "0:00"},
		{"9 a.m. please", "9:00"},
		{"at 19:00", "19:00"},
		{"noon would be nice", "12:00"},
		{"sometime in the evening", "19:00"},
		{"dinner time", "19:30"},
		{"no time here", ""},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).TimeText)
		})
	}
}

func TestExtractCuisine(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"we love pizza", "Italian"},
		{"some sushi maybe", "Japanese"},
		{"a good curry", "Indian"},
		{"tacos for everyone", "Mexican"},
		// Scan order decides when several keywords appear.
		{"italian or chinese, not sure", "Italian"},
		{"nothing specific", ""},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).CuisinePreference)
		})
	}
}

func TestExtractSpecialRequests(t *testing.T) {
	e := newTestExtractor()

	info := e.Extract("it's a birthday celebration, vegetarian menu please")
	assert.Equal(t, []string{"birthday", "celebration", "vegetarian"}, info.SpecialRequests)

	info = e.Extract("we need wheelchair accessible seating by the window")
	assert.Equal(t, []string{"wheelchair", "accessible", "window"}, info.SpecialRequests)

	info = e.Extract("nothing special")
	assert.Empty(t, info.SpecialRequests)
}

func TestExtractCustomerName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"My name is alice smith", "Alice Smith"},
		{"I'm bob", "Bob"},
		{"call me mary jane", "Mary Jane"},
		{"this is arjun", "Arjun"},
		{"a table for four", ""},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).CustomerName)
		})
	}
}

func TestExtractFullUtterance(t *testing.T) {
	info := newTestExtractor().Extract("Table for 4 tomorrow at 7pm, Italian food")

	assert.Equal(t, 4, info.NumberOfGuests)
	assert.Equal(t, "tomorrow", info.DateText)
	require.NotNil(t, info.ParsedDate)
	assert.Equal(t, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), *info.ParsedDate)
	assert.Equal(t, "19:00", info.TimeText)
	assert.Equal(t, "Italian", info.CuisinePreference)
}
