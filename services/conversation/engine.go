// File: services/conversation/engine.go
package conversation

import (
	"context"
	"errors"
	"fmt"

	"paguro/models"
	"paguro/services/session"
	"paguro/services/shaper"

	"go.uber.org/zap"
)

const greetingMessage = "👋 **Ciao!** Sono Paguro, l'assistente per le prenotazioni di Villa Celi a Palinuro.\n💡 **Scrivi** \"disponibilità luglio 2025\" o \"dove si trova\" per iniziare!"

const testMessage = "✅ **Test Paguro OK!** Sistema operativo per Villa Celi.\n💡 **Prova**: 'disponibilità luglio 2025'"

const noAvailabilityMessage = "❌ **Nessuna settimana libera** per il periodo richiesto.\n💡 Prova altri mesi o contattaci per soluzioni personalizzate!"

const noPriorResultsMessage = "❌ **Errore**: Prima cerca le disponibilità, poi scegli il numero da prenotare."

// HandleMessage runs the classify → dispatch → shape pipeline for one
// message. Cross-message state only flows through the session store.
func (s *DefaultService) HandleMessage(ctx context.Context, message, sessionID string) (resp *models.ChatResponse) {
	defer func() {
		// Nothing below the transport boundary may surface a raw fault.
		if r := recover(); r != nil {
			s.Logger.Error("conversation pipeline panicked",
				zap.String("sessionId", sessionID), zap.Any("panic", r))
			resp = &models.ChatResponse{
				Message: shaper.Fallback(shaper.CategoryUnknown),
				Type:    models.TypeError,
			}
		}
	}()

	intent := s.classifier.Classify(ctx, message)
	s.Logger.Info("message classified",
		zap.String("sessionId", sessionID), zap.Int("intent", int(intent.Kind)))

	switch intent.Kind {
	case models.IntentPredefined:
		return s.handlePredefined(intent.Predefined)
	case models.IntentAvailability:
		return s.handleAvailability(ctx, sessionID, intent)
	case models.IntentMissingSlot:
		return &models.ChatResponse{
			Message: fmt.Sprintf("Per l'appartamento **%s**, in che mese e anno?\nEsempio: 'disponibilità %s luglio 2025'.",
				intent.Apartment, intent.Apartment),
			Type: models.TypePromptForInfo,
		}
	case models.IntentBookingChoice:
		return s.handleBookingChoice(ctx, sessionID, intent.Choice)
	case models.IntentGreeting:
		return &models.ChatResponse{Message: greetingMessage, Type: models.TypeGreeting}
	case models.IntentDiagnostic:
		return &models.ChatResponse{Message: testMessage, Type: models.TypeTest}
	default:
		return s.handleUnknown(ctx, message)
	}
}

// Predefined answers are authored pre-shaped and returned as-is; the
// price answer additionally hands the guest off to the booking page.
func (s *DefaultService) handlePredefined(answer *models.PredefinedAnswer) *models.ChatResponse {
	if answer.Redirect {
		return &models.ChatResponse{
			Message:     answer.Message,
			Type:        models.TypeBookingRedirect,
			BookingData: &models.BookingData{RedirectURL: s.BookingPageURL},
		}
	}
	return &models.ChatResponse{Message: answer.Message, Type: models.TypePredefined}
}

func (s *DefaultService) handleAvailability(ctx context.Context, sessionID string, intent models.Intent) *models.ChatResponse {
	if intent.Month == 0 || intent.Year == 0 {
		return &models.ChatResponse{
			Message: "Mi dispiace, per la disponibilità ho bisogno di un mese e un anno.\nEsempio: 'disponibilità luglio 2025' o 'appartamenti liberi agosto'.",
			Type:    models.TypeError,
		}
	}

	weeks, err := s.availability.FindFreeWeeks(ctx, intent.Month, intent.Year, intent.Apartment)
	if err != nil {
		// Store trouble degrades to an empty result set for this turn.
		s.Logger.Error("availability computation failed",
			zap.Int("month", intent.Month), zap.Int("year", intent.Year), zap.Error(err))
		weeks = nil
	}

	if len(weeks) == 0 {
		return &models.ChatResponse{
			Message: noAvailabilityMessage,
			Type:    models.TypeNoAvailability,
		}
	}

	if err := s.Sessions.Put(ctx, sessionID, weeks); err != nil {
		// The listing is still useful; only number-reply booking breaks.
		s.Logger.Error("failed to store availability results in session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	return &models.ChatResponse{
		Message:           formatAvailabilityMessage(weeks),
		Type:              models.TypeAvailability,
		AvailabilityCount: len(weeks),
		AvailabilityData:  weeks,
	}
}

func (s *DefaultService) handleBookingChoice(ctx context.Context, sessionID string, choice int) *models.ChatResponse {
	week, err := s.Sessions.Resolve(ctx, sessionID, choice)
	if err != nil {
		var outOfRange *session.IndexOutOfRangeError
		switch {
		case errors.Is(err, session.ErrNoPriorResults):
			return &models.ChatResponse{Message: noPriorResultsMessage, Type: models.TypeError}
		case errors.As(err, &outOfRange):
			return &models.ChatResponse{
				Message: fmt.Sprintf("❌ **Numero non valido**. Scegli un numero tra 1 e %d.", outOfRange.Max),
				Type:    models.TypeError,
			}
		default:
			s.Logger.Error("session resolution failed",
				zap.String("sessionId", sessionID), zap.Error(err))
			return &models.ChatResponse{Message: noPriorResultsMessage, Type: models.TypeError}
		}
	}

	s.Logger.Info("booking selection resolved",
		zap.String("sessionId", sessionID),
		zap.String("apartment", week.Apartment),
		zap.String("checkIn", week.CheckIn))

	return &models.ChatResponse{
		Message: formatBookingConfirmation(week),
		Type:    models.TypeBookingRedirect,
		BookingData: &models.BookingData{
			Apartment:         week.Apartment,
			CheckIn:           week.CheckIn,
			CheckOut:          week.CheckOut,
			CheckInFormatted:  week.CheckInFormatted,
			CheckOutFormatted: week.CheckOutFormatted,
			RedirectURL:       s.BookingPageURL,
		},
	}
}

// handleUnknown asks the generator and shapes whatever comes back; a
// timeout, error or empty completion falls back to the fixed message
// for the guest's topic. Fallbacks are pre-shaped and never reshaped.
func (s *DefaultService) handleUnknown(ctx context.Context, message string) *models.ChatResponse {
	category := shaper.ClassifyCategory(message)

	prompt := fmt.Sprintf("Sei Paguro, l'assistente virtuale di Villa Celi, appartamenti vacanze a Palinuro nel Cilento. Rispondi in modo cordiale e professionale a questa domanda dell'ospite: %s\n\nMantieni la risposta breve e utile. Se non conosci informazioni specifiche, invita gentilmente a contattare Villa Celi.", message)

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		s.Logger.Warn("generator unavailable, using fallback",
			zap.String("category", string(category)), zap.Error(err))
		return &models.ChatResponse{
			Message: shaper.Fallback(category),
			Type:    models.TypeFallback,
		}
	}

	return &models.ChatResponse{
		Message: shaper.Shape(text, category),
		Type:    models.TypeAIResponse,
	}
}
