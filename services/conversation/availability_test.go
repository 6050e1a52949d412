package conversation

import (
	"context"
	"reflect"
	"testing"
	"time"

	"paguro/models"

	"go.uber.org/zap"
)

func newTestEngine(repo *fakeOccupancyRepo) *AvailabilityEngine {
	return NewAvailabilityEngine(repo, zap.NewNop())
}

func TestFindFreeWeeks_NoApartmentsConfigured(t *testing.T) {
	e := newTestEngine(&fakeOccupancyRepo{})

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weeks) != 0 {
		t.Errorf("expected zero weeks, got %d", len(weeks))
	}
}

func TestFindFreeWeeks_ExcludesOccupiedWeek(t *testing.T) {
	repo := &fakeOccupancyRepo{
		apartments: []string{"Appartamento A"},
		records: map[string][]models.OccupancyRecord{
			"Appartamento A": {
				{Apartment: "Appartamento A", CheckIn: "2025-07-05", CheckOut: "2025-07-12"},
			},
		},
	}
	e := newTestEngine(repo)

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// July 2025: Saturday-aligned candidates start 2025-06-28 and step
	// weekly through 2025-07-26. Only the occupied 07-05 week drops.
	wantStarts := []string{"2025-06-28", "2025-07-12", "2025-07-19", "2025-07-26"}
	if len(weeks) != len(wantStarts) {
		t.Fatalf("expected %d free weeks, got %d: %+v", len(wantStarts), len(weeks), weeks)
	}
	for i, week := range weeks {
		if week.CheckIn != wantStarts[i] {
			t.Errorf("week %d: expected start %s, got %s", i, wantStarts[i], week.CheckIn)
		}
	}
}

func TestFindFreeWeeks_WeekIntegrity(t *testing.T) {
	repo := &fakeOccupancyRepo{apartments: []string{"Appartamento A"}}
	e := newTestEngine(repo)

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, week := range weeks {
		start, err := time.Parse(dateLayout, week.CheckIn)
		if err != nil {
			t.Fatalf("unparseable week start %q: %v", week.CheckIn, err)
		}
		end, err := time.Parse(dateLayout, week.CheckOut)
		if err != nil {
			t.Fatalf("unparseable week end %q: %v", week.CheckOut, err)
		}
		if start.Weekday() != time.Saturday {
			t.Errorf("week start %s is not a Saturday", week.CheckIn)
		}
		if end.Sub(start) != 7*24*time.Hour {
			t.Errorf("week %s-%s does not span 7 days", week.CheckIn, week.CheckOut)
		}
	}
}

func TestFindFreeWeeks_AdjacencyIsFree(t *testing.T) {
	repo := &fakeOccupancyRepo{
		apartments: []string{"Appartamento A"},
		records: map[string][]models.OccupancyRecord{
			"Appartamento A": {
				{Apartment: "Appartamento A", CheckIn: "2025-07-12", CheckOut: "2025-07-19"},
			},
		},
	}
	e := newTestEngine(repo)

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	starts := make(map[string]bool)
	for _, week := range weeks {
		starts[week.CheckIn] = true
	}
	// The weeks ending at the check-in and starting at the check-out
	// must both survive.
	if !starts["2025-07-05"] {
		t.Error("week ending exactly at an occupancy check-in should be free")
	}
	if !starts["2025-07-19"] {
		t.Error("week starting exactly at an occupancy check-out should be free")
	}
	if starts["2025-07-12"] {
		t.Error("the occupied week itself must be excluded")
	}
}

func TestFindFreeWeeks_OrderingAndIndexes(t *testing.T) {
	repo := &fakeOccupancyRepo{
		apartments: []string{"Appartamento A", "Appartamento B"},
		records:    map[string][]models.OccupancyRecord{},
	}
	e := newTestEngine(repo)

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, week := range weeks {
		if week.Index != i+1 {
			t.Errorf("index space must be contiguous and 1-based: position %d has index %d", i, week.Index)
		}
		if i > 0 {
			prev := weeks[i-1]
			if week.Apartment < prev.Apartment {
				t.Errorf("result not grouped by apartment: %q after %q", week.Apartment, prev.Apartment)
			}
			if week.Apartment == prev.Apartment && week.CheckIn < prev.CheckIn {
				t.Errorf("weeks not chronological within %q", week.Apartment)
			}
		}
	}
}

func TestFindFreeWeeks_IdempotentRequery(t *testing.T) {
	repo := &fakeOccupancyRepo{
		apartments: []string{"Appartamento A", "Appartamento B"},
		records: map[string][]models.OccupancyRecord{
			"Appartamento B": {
				{Apartment: "Appartamento B", CheckIn: "2025-07-05", CheckOut: "2025-07-26"},
			},
		},
	}
	e := newTestEngine(repo)

	first, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs over unchanged data must yield identical results")
	}
}

func TestFindFreeWeeks_MalformedIntervalSkipped(t *testing.T) {
	repo := &fakeOccupancyRepo{
		apartments: []string{"Appartamento A"},
		records: map[string][]models.OccupancyRecord{
			"Appartamento A": {
				{Apartment: "Appartamento A", CheckIn: "05/07/2025", CheckOut: "12/07/2025"},
			},
		},
	}
	e := newTestEngine(repo)

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "")
	if err != nil {
		t.Fatalf("a malformed row must not abort the computation: %v", err)
	}
	// The malformed interval is excluded, so every candidate week is free.
	if len(weeks) != 5 {
		t.Errorf("expected 5 free weeks with the malformed row dropped, got %d", len(weeks))
	}
}

func TestFindFreeWeeks_SingleApartmentFilter(t *testing.T) {
	repo := &fakeOccupancyRepo{
		apartments: []string{"Appartamento A", "Appartamento B"},
		records:    map[string][]models.OccupancyRecord{},
	}
	e := newTestEngine(repo)

	weeks, err := e.FindFreeWeeks(context.Background(), 7, 2025, "Appartamento B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, week := range weeks {
		if week.Apartment != "Appartamento B" {
			t.Errorf("expected only Appartamento B, got %q", week.Apartment)
		}
	}
	if len(weeks) == 0 {
		t.Error("expected free weeks for the named apartment")
	}
}
