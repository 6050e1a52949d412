package conversation

import (
	"context"
	"strings"
	"testing"
	"time"

	"paguro/models"
	"paguro/services/session"

	"go.uber.org/zap"
)

const testBookingURL = "https://www.villaceli.it/prenotazione/"

func newTestService(repo *fakeOccupancyRepo, gen *fakeGenerator) *DefaultService {
	store := session.NewMemoryStore(session.DefaultTTL)
	svc := NewDefaultService(repo, store, gen, testBookingURL, zap.NewNop())
	return svc.WithClock(fixedClock(2025, time.March, 15))
}

func julyRepo() *fakeOccupancyRepo {
	return &fakeOccupancyRepo{
		apartments: []string{"Appartamento A"},
		records: map[string][]models.OccupancyRecord{
			"Appartamento A": {
				{Apartment: "Appartamento A", CheckIn: "2025-07-05", CheckOut: "2025-07-12"},
			},
		},
	}
}

func TestHandleMessage_AvailabilityThenBooking(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})
	ctx := context.Background()

	resp := svc.HandleMessage(ctx, "disponibilità luglio 2025", "sess-1")
	if resp.Type != models.TypeAvailability {
		t.Fatalf("expected availability response, got %s: %s", resp.Type, resp.Message)
	}
	if resp.AvailabilityCount != 4 {
		t.Fatalf("expected 4 free weeks, got %d", resp.AvailabilityCount)
	}
	if len(resp.AvailabilityData) != 4 {
		t.Fatalf("payload count mismatch: %d", len(resp.AvailabilityData))
	}

	resp = svc.HandleMessage(ctx, "2", "sess-1")
	if resp.Type != models.TypeBookingRedirect {
		t.Fatalf("expected booking redirect, got %s: %s", resp.Type, resp.Message)
	}
	if resp.BookingData == nil {
		t.Fatal("booking redirect must carry booking data")
	}
	if resp.BookingData.CheckIn != "2025-07-12" {
		t.Errorf("choice 2 should resolve the 2025-07-12 week, got %s", resp.BookingData.CheckIn)
	}
	if resp.BookingData.RedirectURL != testBookingURL {
		t.Errorf("unexpected redirect URL %q", resp.BookingData.RedirectURL)
	}
}

func TestHandleMessage_BookingChoiceWithoutPriorSearch(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "3", "fresh-session")
	if resp.Type != models.TypeError {
		t.Fatalf("expected error response, got %s", resp.Type)
	}
	if !strings.Contains(resp.Message, "Prima cerca le disponibilità") {
		t.Errorf("expected guidance to search first, got %q", resp.Message)
	}
}

func TestHandleMessage_BookingChoiceOutOfRange(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})
	ctx := context.Background()

	svc.HandleMessage(ctx, "disponibilità luglio 2025", "sess-2")
	resp := svc.HandleMessage(ctx, "9", "sess-2")
	if resp.Type != models.TypeError {
		t.Fatalf("expected error response, got %s", resp.Type)
	}
	if !strings.Contains(resp.Message, "tra 1 e 4") {
		t.Errorf("expected the valid range in the message, got %q", resp.Message)
	}
}

func TestHandleMessage_NoAvailability(t *testing.T) {
	svc := newTestService(&fakeOccupancyRepo{}, &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "disponibilità luglio 2025", "sess-3")
	if resp.Type != models.TypeNoAvailability {
		t.Fatalf("expected no availability, got %s", resp.Type)
	}
}

func TestHandleMessage_StoreFailureDegradesToNoAvailability(t *testing.T) {
	repo := julyRepo()
	repo.occErr = errStore
	svc := newTestService(repo, &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "disponibilità luglio 2025", "sess-4")
	if resp.Type != models.TypeNoAvailability {
		t.Fatalf("store failure must degrade to empty results, got %s", resp.Type)
	}
}

func TestHandleMessage_PredefinedAnswer(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "dove si trova la villa?", "sess-5")
	if resp.Type != models.TypePredefined {
		t.Fatalf("expected predefined, got %s", resp.Type)
	}
	if !strings.Contains(resp.Message, "Palinuro") {
		t.Errorf("location answer should mention Palinuro, got %q", resp.Message)
	}
}

func TestHandleMessage_PriceRedirect(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "quali sono i prezzi?", "sess-6")
	if resp.Type != models.TypeBookingRedirect {
		t.Fatalf("expected booking redirect, got %s", resp.Type)
	}
	if resp.BookingData == nil || resp.BookingData.RedirectURL != testBookingURL {
		t.Error("price answer must carry the booking page URL")
	}
}

func TestHandleMessage_MissingSlotPrompt(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "è libero l'appartamento a?", "sess-7")
	if resp.Type != models.TypePromptForInfo {
		t.Fatalf("expected prompt for info, got %s", resp.Type)
	}
	if !strings.Contains(resp.Message, "Appartamento A") {
		t.Errorf("prompt should echo the apartment, got %q", resp.Message)
	}
}

func TestHandleMessage_Greeting(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})

	resp := svc.HandleMessage(context.Background(), "ciao", "sess-8")
	if resp.Type != models.TypeGreeting {
		t.Fatalf("expected greeting, got %s", resp.Type)
	}
}

func TestHandleMessage_DiagnosticSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{text: "should never appear"}
	svc := newTestService(julyRepo(), gen)

	resp := svc.HandleMessage(context.Background(), "questo è un test", "sess-diag")
	if resp.Type != models.TypeTest {
		t.Fatalf("expected diagnostic response, got %s", resp.Type)
	}
	if gen.called {
		t.Error("diagnostic messages must be answered without the generator")
	}
}

func TestHandleMessage_GeneratorFailureUsesFallback(t *testing.T) {
	gen := &fakeGenerator{err: errStore}
	svc := newTestService(julyRepo(), gen)

	resp := svc.HandleMessage(context.Background(), "che tempo fa a dicembre?", "sess-9")
	if resp.Type != models.TypeFallback {
		t.Fatalf("expected fallback, got %s", resp.Type)
	}
	if !gen.called {
		t.Error("the generator should have been consulted")
	}
	if !strings.Contains(resp.Message, "Palinuro") {
		t.Errorf("weather fallback should stay on topic, got %q", resp.Message)
	}
}

func TestHandleMessage_GeneratorReplyIsShaped(t *testing.T) {
	gen := &fakeGenerator{text: "Riga uno.\nRiga due.\nRiga tre.\nRiga quattro.\nRiga cinque.\nRiga sei."}
	svc := newTestService(julyRepo(), gen)

	resp := svc.HandleMessage(context.Background(), "parlami della storia della zona", "sess-10")
	if resp.Type != models.TypeAIResponse {
		t.Fatalf("expected ai response, got %s", resp.Type)
	}
	lines := strings.Split(resp.Message, "\n")
	if len(lines) > 4 {
		t.Errorf("shaped reply exceeds 4 lines: %d", len(lines))
	}
	if !strings.Contains(strings.ToLower(resp.Message), "disponibilità") {
		t.Errorf("shaped reply must end with a call to action, got %q", resp.Message)
	}
}

func TestHandleMessage_SessionsAreIsolated(t *testing.T) {
	svc := newTestService(julyRepo(), &fakeGenerator{})
	ctx := context.Background()

	svc.HandleMessage(ctx, "disponibilità luglio 2025", "sess-a")
	resp := svc.HandleMessage(ctx, "1", "sess-b")
	if resp.Type != models.TypeError {
		t.Errorf("results stored in one session must not leak into another, got %s", resp.Type)
	}
}
