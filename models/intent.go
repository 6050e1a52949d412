package models

// IntentKind tags the variant of a classified guest message.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentPredefined
	IntentBookingChoice
	IntentAvailability
	IntentMissingSlot
	IntentGreeting
	IntentDiagnostic
)

// PredefinedAnswer is one curated FAQ reply. Answers are authored
// pre-shaped: they already satisfy the length and CTA constraints.
// Redirect marks answers that should send the guest to the booking page.
type PredefinedAnswer struct {
	Key      string
	Message  string
	Redirect bool
}

// Intent is the result of classifying one incoming message. Only the
// fields matching Kind are meaningful. Produced once per message and
// never mutated.
type Intent struct {
	Kind       IntentKind
	Predefined *PredefinedAnswer // IntentPredefined
	Choice     int               // IntentBookingChoice, 1-based
	Month      int               // IntentAvailability, 1..12
	Year       int               // IntentAvailability
	Apartment  string            // IntentAvailability (optional), IntentMissingSlot
}
