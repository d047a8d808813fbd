package agent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numberWords maps spelled-out numbers to integers for guest counts and
// spoken hours. Words outside this table never match.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20,
}

// cuisineKeywords maps utterance keywords to canonical cuisines. Scanned in
// this order; the first keyword present in the utterance wins.
var cuisineKeywords = []struct {
	keyword string
	cuisine string
}{
	{"italian", "Italian"},
	{"chinese", "Chinese"},
	{"indian", "Indian"},
	{"mexican", "Mexican"},
	{"japanese", "Japanese"},
	{"sushi", "Japanese"},
	{"american", "American"},
	{"thai", "Thai"},
	{"french", "French"},
	{"mediterranean", "Mediterranean"},
	{"pizza", "Italian"},
	{"pasta", "Italian"},
	{"curry", "Indian"},
	{"ramen", "Japanese"},
	{"tacos", "Mexican"},
}

// specialRequestKeywords are collected exhaustively (every hit, in this
// order), unlike the first-match-wins matchers above.
var specialRequestKeywords = []string{
	"birthday", "anniversary", "celebration", "vegetarian",
	"vegan", "gluten-free", "gluten free", "allergic", "allergy",
	"wheelchair", "accessible", "quiet", "window", "view",
}

var (
	digitGuestsRe  = regexp.MustCompile(`(\d+)\s*(people|person|guests?|pax|diners?)`)
	spokenGuestsRe = regexp.MustCompile(`(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\s*(people|person|guests?|pax|diners?)`)
	tableForRe     = regexp.MustCompile(`table\s+for\s+(\d+|one|two|three|four|five|six|seven|eight|nine|ten)`)
	partyOfRe      = regexp.MustCompile(`party\s+of\s+(\d+|one|two|three|four|five|six|seven|eight|nine|ten)`)

	dayAfterTomorrowRe = regexp.MustCompile(`day\s+after\s+tomorrow`)
	tomorrowRe         = regexp.MustCompile(`\btomorrow\b`)
	todayRe            = regexp.MustCompile(`\btoday\b`)
	weekdayRe          = regexp.MustCompile(`(this|next)?\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	dayMonthRe         = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)(?:\s+(\d{4}))?`)
	monthDayRe         = regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?`)
	numericDateRe      = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?`)

	time12Re = regexp.MustCompile(`(\d{1,2}|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)`)
	time24Re = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

	customerNameRe = regexp.MustCompile(`(?:my name is|i'm|i am|this is|call me)\s+([a-z]+(?:\s+[a-z]+)?)`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// timeKeywords maps phrase words to a fixed time of day. Checked in this
// order as a fallback when no explicit time matched.
var timeKeywords = []struct {
	re   *regexp.Regexp
	time string
}{
	{regexp.MustCompile(`\bnoon\b`), "12:00"},
	{regexp.MustCompile(`\bmidnight\b`), "00:00"},
	{regexp.MustCompile(`\bmorning\b`), "09:00"},
	{regexp.MustCompile(`\bafternoon\b`), "14:00"},
	{regexp.MustCompile(`\bevening\b`), "19:00"},
	{regexp.MustCompile(`\blunch\s*time\b`), "12:30"},
	{regexp.MustCompile(`\bdinner\s*time\b`), "19:30"},
}

// guestMatcher attempts to recognise a guest count in the lowercased
// utterance. Matchers are tried in order; the first hit wins.
type guestMatcher func(text string) (int, bool)

var guestMatchers = []guestMatcher{
	func(text string) (int, bool) {
		m := digitGuestsRe.FindStringSubmatch(text)
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(m[1])
		return n, err == nil
	},
	func(text string) (int, bool) {
		m := spokenGuestsRe.FindStringSubmatch(text)
		if m == nil {
			return 0, false
		}
		n, ok := numberWords[m[1]]
		return n, ok
	},
	func(text string) (int, bool) { return numericOrWord(tableForRe, text) },
	func(text string) (int, bool) { return numericOrWord(partyOfRe, text) },
}

func numericOrWord(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		return n, true
	}
	n, ok := numberWords[m[1]]
	return n, ok
}

// dateMatcher attempts to resolve a calendar date relative to now, returning
// the matched source text and the resolved date.
type dateMatcher func(now time.Time, text string) (string, time.Time, bool)

var dateMatchers = []dateMatcher{
	func(now time.Time, text string) (string, time.Time, bool) {
		if dayAfterTomorrowRe.MatchString(text) {
			return "day after tomorrow", midnight(now).AddDate(0, 0, 2), true
		}
		return "", time.Time{}, false
	},
	func(now time.Time, text string) (string, time.Time, bool) {
		if tomorrowRe.MatchString(text) {
			return "tomorrow", midnight(now).AddDate(0, 0, 1), true
		}
		return "", time.Time{}, false
	},
	func(now time.Time, text string) (string, time.Time, bool) {
		if todayRe.MatchString(text) {
			return "today", midnight(now), true
		}
		return "", time.Time{}, false
	},
	matchWeekday,
	matchDayMonth,
	matchMonthDay,
	matchNumericDate,
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// matchWeekday resolves "friday", "this friday", "next friday". A weekday
// that already passed (or is today) rolls forward a week; an explicit "next"
// always adds the full week.
func matchWeekday(now time.Time, text string) (string, time.Time, bool) {
	m := weekdayRe.FindStringSubmatch(text)
	if m == nil {
		return "", time.Time{}, false
	}
	target := indexOf(weekdayNames, m[2])
	daysUntil := target - int(now.Weekday())
	if m[1] == "next" || daysUntil <= 0 {
		daysUntil += 7
	}
	return strings.TrimSpace(m[0]), midnight(now).AddDate(0, 0, daysUntil), true
}

// matchDayMonth resolves "10th december" / "10 december 2026".
func matchDayMonth(now time.Time, text string) (string, time.Time, bool) {
	m := dayMonthRe.FindStringSubmatch(text)
	if m == nil {
		return "", time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month := indexOf(monthNames, m[2]) + 1
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return m[0], time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
}

// matchMonthDay resolves "december 10th" / "december 10 2026".
func matchMonthDay(now time.Time, text string) (string, time.Time, bool) {
	m := monthDayRe.FindStringSubmatch(text)
	if m == nil {
		return "", time.Time{}, false
	}
	month := indexOf(monthNames, m[1]) + 1
	day, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return m[0], time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
}

// matchNumericDate resolves "12/25", "12-25-26", "12/25/2026" as MM/DD with
// two-digit years mapped into the 2000s.
func matchNumericDate(now time.Time, text string) (string, time.Time, bool) {
	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return "", time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	return m[0], time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
