// File: services/conversation/availability.go
package conversation

import (
	"context"
	"fmt"
	"sort"
	"time"

	occupancyRepo "paguro/database/repository/occupancy"
	"paguro/models"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type occupiedInterval struct {
	checkIn  time.Time
	checkOut time.Time
}

type candidateWeek struct {
	apartment string
	start     time.Time
	end       time.Time
}

// AvailabilityEngine computes free Saturday-to-Saturday rental weeks
// from stored occupancy intervals.
type AvailabilityEngine struct {
	Occupancy occupancyRepo.Repository
	Logger    *zap.Logger
}

func NewAvailabilityEngine(repo occupancyRepo.Repository, logger *zap.Logger) *AvailabilityEngine {
	return &AvailabilityEngine{Occupancy: repo, Logger: logger}
}

// FindFreeWeeks returns every Saturday-aligned 7-day week intersecting
// the given calendar month that has no overlapping occupancy interval
// for its apartment. An empty apartment means all apartments. The
// result is ordered by apartment name, then chronologically, with
// 1-based indexes assigned after ordering, so identical inputs over
// unchanged data always yield an identical result.
func (e *AvailabilityEngine) FindFreeWeeks(ctx context.Context, month, year int, apartment string) ([]models.AvailabilityWeek, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	var apartments []string
	if apartment != "" {
		apartments = []string{apartment}
	} else {
		names, err := e.Occupancy.ListApartments(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve apartments: %w", err)
		}
		apartments = names
	}
	if len(apartments) == 0 {
		e.Logger.Warn("no apartments configured for availability query")
		return nil, nil
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var candidates []candidateWeek
	for _, apt := range apartments {
		occupied, err := e.loadOccupied(ctx, apt, monthStart, monthEnd)
		if err != nil {
			// One apartment failing never aborts the whole query.
			e.Logger.Error("skipping apartment in availability query",
				zap.String("apartment", apt), zap.Error(err))
			continue
		}
		candidates = append(candidates, e.freeWeeks(apt, monthStart, monthEnd, occupied)...)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].apartment != candidates[j].apartment {
			return candidates[i].apartment < candidates[j].apartment
		}
		return candidates[i].start.Before(candidates[j].start)
	})

	weeks := make([]models.AvailabilityWeek, 0, len(candidates))
	for i, cand := range candidates {
		weeks = append(weeks, models.AvailabilityWeek{
			Index:             i + 1,
			Apartment:         cand.apartment,
			CheckIn:           cand.start.Format(dateLayout),
			CheckOut:          cand.end.Format(dateLayout),
			CheckInFormatted:  formatDateItalian(cand.start.Format(dateLayout)),
			CheckOutFormatted: formatDateItalian(cand.end.Format(dateLayout)),
		})
	}
	return weeks, nil
}

// loadOccupied fetches the apartment's intervals overlapping the month
// and parses them, dropping malformed rows with a warning.
func (e *AvailabilityEngine) loadOccupied(ctx context.Context, apartment string, monthStart, monthEnd time.Time) ([]occupiedInterval, error) {
	records, err := e.Occupancy.ListOccupancy(ctx, apartment,
		monthStart.Format(dateLayout), monthEnd.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	intervals := make([]occupiedInterval, 0, len(records))
	for _, rec := range records {
		checkIn, errIn := time.Parse(dateLayout, rec.CheckIn)
		checkOut, errOut := time.Parse(dateLayout, rec.CheckOut)
		if errIn != nil || errOut != nil {
			e.Logger.Warn("skipping malformed occupancy interval",
				zap.String("apartment", apartment),
				zap.String("checkIn", rec.CheckIn),
				zap.String("checkOut", rec.CheckOut))
			continue
		}
		intervals = append(intervals, occupiedInterval{checkIn: checkIn, checkOut: checkOut})
	}
	return intervals, nil
}

// freeWeeks walks Saturday-aligned candidate weeks across the month and
// keeps the ones whose half-open [start, end) range overlaps no
// occupancy interval. A week ending exactly on a check-in, or starting
// exactly on a check-out, is free.
func (e *AvailabilityEngine) freeWeeks(apartment string, monthStart, monthEnd time.Time, occupied []occupiedInterval) []candidateWeek {
	saturday := monthStart
	for saturday.Weekday() != time.Saturday {
		saturday = saturday.AddDate(0, 0, -1)
	}

	var free []candidateWeek
	for ; !saturday.After(monthEnd); saturday = saturday.AddDate(0, 0, 7) {
		weekStart := saturday
		weekEnd := saturday.AddDate(0, 0, 7)
		if weekEnd.Before(monthStart) || weekStart.After(monthEnd) {
			continue
		}

		blocked := false
		for _, iv := range occupied {
			if weekStart.Before(iv.checkOut) && weekEnd.After(iv.checkIn) {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, candidateWeek{apartment: apartment, start: weekStart, end: weekEnd})
		}
	}
	return free
}
