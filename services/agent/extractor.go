package agent

import (
	"fmt"
	"strings"
	"time"

	"tablebook/models"
)

// Extractor turns a raw utterance into the booking fields it mentions. It is
// deterministic for a fixed clock; Now is injectable so date-relative phrases
// ("today", "next friday") can be pinned in tests.
type Extractor struct {
	Now func() time.Time
}

// NewExtractor returns an Extractor using the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

// Extract parses a single utterance. Unrecognised fields are simply left
// zero; extraction never fails.
func (e *Extractor) Extract(text string) models.ExtractedInfo {
	var info models.ExtractedInfo
	lower := strings.ToLower(text)
	now := e.Now()

	for _, match := range guestMatchers {
		if n, ok := match(lower); ok {
			info.NumberOfGuests = n
			break
		}
	}

	for _, entry := range cuisineKeywords {
		if strings.Contains(lower, entry.keyword) {
			info.CuisinePreference = entry.cuisine
			break
		}
	}

	for _, match := range dateMatchers {
		if src, date, ok := match(now, lower); ok {
			info.DateText = src
			info.ParsedDate = &date
			break
		}
	}

	info.TimeText = extractTime(lower)

	for _, keyword := range specialRequestKeywords {
		if strings.Contains(lower, keyword) {
			info.SpecialRequests = append(info.SpecialRequests, keyword)
		}
	}

	if m := customerNameRe.FindStringSubmatch(lower); m != nil {
		info.CustomerName = capitalizeWords(m[1])
	}

	return info
}

// extractTime tries the 12-hour pattern first, then bare 24-hour, then the
// fixed phrase keywords.
func extractTime(lower string) string {
	if m := time12Re.FindStringSubmatch(lower); m != nil {
		hour, ok := numberWords[m[1]]
		if !ok {
			fmt.Sscanf(m[1], "%d", &hour)
		}
		minute := m[2]
		if minute == "" {
			minute = "00"
		}
		period := strings.ReplaceAll(m[3], ".", "")
		if period == "pm" && hour != 12 {
			hour += 12
		}
		if period == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%d:%s", hour, minute)
	}

	if m := time24Re.FindString(lower); m != "" {
		return m
	}

	for _, entry := range timeKeywords {
		if entry.re.MatchString(lower) {
			return entry.time
		}
	}
	return ""
}

// capitalizeWords upper-cases the leading character of each word and rejoins
// them with single spaces.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
