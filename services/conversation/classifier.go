// File: services/conversation/classifier.go
package conversation

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"paguro/models"

	"go.uber.org/zap"
)

// The rule cascade below is evaluated top to bottom, first match wins.
// The ordering is the algorithm: predefined answers outrank everything,
// a bare number is always a booking choice, and availability keywords
// are only consulted after the booking phrases.

var numericPattern = regexp.MustCompile(`^\s*\d+\s*$`)

// bookingPatterns are tried in this order; the first one that matches
// and yields a parseable integer wins.
var bookingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`voglio prenotare.*?(\d+)`),
	regexp.MustCompile(`prenota.*?(\d+)`),
	regexp.MustCompile(`scelgo.*?(\d+)`),
	regexp.MustCompile(`prendo.*?(\d+)`),
	regexp.MustCompile(`numero.*?(\d+)`),
	regexp.MustCompile(`la\s*(\d+)`),
	regexp.MustCompile(`il\s*(\d+)`),
}

// Substrings, so "disponibilità", "liberi", "appartamenti" all hit.
var availabilityKeywords = []string{
	"disponibilit", "liber", "case", "libero", "appartament", "disponibil",
}

var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ciao\s*$`),
	regexp.MustCompile(`^salve\s*$`),
	regexp.MustCompile(`^buongiorno\s*$`),
	regexp.MustCompile(`^buonasera\s*$`),
	regexp.MustCompile(`^help\s*$`),
	regexp.MustCompile(`^aiuto\s*$`),
	regexp.MustCompile(`^inizia\s*$`),
}

// Classifier decides the request kind for one message. It is a pure
// function of the text plus the live apartment-name set; no failure
// escapes it.
type Classifier struct {
	Slots  *SlotExtractor
	Logger *zap.Logger
}

func NewClassifier(slots *SlotExtractor, logger *zap.Logger) *Classifier {
	return &Classifier{Slots: slots, Logger: logger}
}

func (c *Classifier) Classify(ctx context.Context, message string) models.Intent {
	lower := strings.ToLower(strings.TrimSpace(message))

	// 1. Curated FAQ answers.
	if answer := findPredefined(lower); answer != nil {
		c.Logger.Debug("classified as predefined", zap.String("key", answer.Key))
		return models.Intent{Kind: models.IntentPredefined, Predefined: answer}
	}

	// 2. A bare number is a booking choice.
	if numericPattern.MatchString(lower) {
		if n, err := strconv.Atoi(strings.TrimSpace(lower)); err == nil {
			return models.Intent{Kind: models.IntentBookingChoice, Choice: n}
		}
	}

	// 3. Booking phrases carrying a number.
	for _, pattern := range bookingPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return models.Intent{Kind: models.IntentBookingChoice, Choice: n}
			}
		}
	}

	// 4. Availability requests.
	if containsAnyKeyword(lower, availabilityKeywords) {
		slots := c.Slots.Extract(ctx, lower)
		if slots.Month != 0 && slots.Year != 0 {
			return models.Intent{
				Kind:      models.IntentAvailability,
				Month:     slots.Month,
				Year:      slots.Year,
				Apartment: slots.Apartment,
			}
		}
		if slots.Apartment != "" {
			return models.Intent{Kind: models.IntentMissingSlot, Apartment: slots.Apartment}
		}
	}

	// 5. Greetings.
	for _, pattern := range greetingPatterns {
		if pattern.MatchString(lower) {
			return models.Intent{Kind: models.IntentGreeting}
		}
	}

	// 6. Diagnostic keyword.
	if strings.Contains(lower, "test") {
		return models.Intent{Kind: models.IntentDiagnostic}
	}

	return models.Intent{Kind: models.IntentUnknown}
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
