// File: services/conversation/slots.go
package conversation

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	occupancyRepo "paguro/database/repository/occupancy"

	"go.uber.org/zap"
)

// Slots are the structured values extracted from free text. Zero
// values mean "absent".
type Slots struct {
	Month     int    // 1..12
	Year      int
	Apartment string // canonical DB casing
}

// monthLexicon is scanned in calendar order; the first name contained
// in the message wins. The order is part of the contract, so keep it
// stable.
var monthLexicon = []struct {
	Name string
	Num  int
}{
	{"gennaio", 1}, {"febbraio", 2}, {"marzo", 3}, {"aprile", 4},
	{"maggio", 5}, {"giugno", 6}, {"luglio", 7}, {"agosto", 8},
	{"settembre", 9}, {"ottobre", 10}, {"novembre", 11}, {"dicembre", 12},
}

// Accepts years 2024 through 2099.
var yearPattern = regexp.MustCompile(`\b(202[4-9]|20[3-9][0-9])\b`)

// SlotExtractor pulls month/year/apartment hints out of raw text. It
// queries the live apartment list on every extraction so renames in
// the store are picked up immediately.
type SlotExtractor struct {
	Occupancy occupancyRepo.Repository
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewSlotExtractor(repo occupancyRepo.Repository, logger *zap.Logger) *SlotExtractor {
	return &SlotExtractor{Occupancy: repo, Logger: logger, Now: time.Now}
}

// Extract is read-only and total: a store failure degrades the
// apartment slot to absent instead of failing the extraction.
func (e *SlotExtractor) Extract(ctx context.Context, text string) Slots {
	lower := strings.ToLower(strings.TrimSpace(text))
	var slots Slots

	for _, m := range monthLexicon {
		if strings.Contains(lower, m.Name) {
			slots.Month = m.Num
			break
		}
	}

	if match := yearPattern.FindString(lower); match != "" {
		slots.Year, _ = strconv.Atoi(match)
	} else if slots.Month != 0 {
		// A bare month means the next occurrence of that month.
		now := e.Now()
		if slots.Month < int(now.Month()) {
			slots.Year = now.Year() + 1
		} else {
			slots.Year = now.Year()
		}
	}

	names, err := e.Occupancy.ListApartments(ctx)
	if err != nil {
		e.Logger.Warn("slot extraction: apartment list unavailable", zap.Error(err))
		return slots
	}
	for _, name := range names {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(name)) + `\b`)
		if pattern.MatchString(lower) {
			slots.Apartment = name
			break
		}
	}
	return slots
}
