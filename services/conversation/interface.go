// File: services/conversation/interface.go
package conversation

import (
	"context"
	"time"

	occupancyRepo "paguro/database/repository/occupancy"
	"paguro/models"
	ai "paguro/services/intelligence"
	"paguro/services/session"

	"go.uber.org/zap"
)

// Service turns one guest message plus prior session state into a
// complete chat reply. It never returns an error: every fault collapses
// to a well-formed fallback response.
type Service interface {
	HandleMessage(ctx context.Context, message, sessionID string) *models.ChatResponse
}

// DefaultService wires the classifier, availability engine, session
// store, generator and shaper together.
type DefaultService struct {
	Sessions       session.Store
	Generator      ai.Generator
	BookingPageURL string
	Logger         *zap.Logger

	classifier   *Classifier
	availability *AvailabilityEngine
}

func NewDefaultService(
	occupancy occupancyRepo.Repository,
	sessions session.Store,
	generator ai.Generator,
	bookingPageURL string,
	logger *zap.Logger,
) *DefaultService {
	extractor := NewSlotExtractor(occupancy, logger)
	return &DefaultService{
		Sessions:       sessions,
		Generator:      generator,
		BookingPageURL: bookingPageURL,
		Logger:         logger,
		classifier:     NewClassifier(extractor, logger),
		availability:   NewAvailabilityEngine(occupancy, logger),
	}
}

// WithClock overrides the extractor's clock; used by tests for stable
// year inference.
func (s *DefaultService) WithClock(now func() time.Time) *DefaultService {
	s.classifier.Slots.Now = now
	return s
}
