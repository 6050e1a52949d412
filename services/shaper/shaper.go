// File: services/shaper/shaper.go
package shaper

import "strings"

// MaxLines is the hard cap on non-empty lines in any shaped reply.
const MaxLines = 4

// Category is the coarse topic of the guest's original message, used
// to pick the call-to-action and the fallback copy. It is assigned
// from the guest message, never from the generated reply.
type Category string

const (
	CategoryWeather  Category = "weather"
	CategoryFood     Category = "food"
	CategoryActivity Category = "activity"
	CategoryGeneric  Category = "generic"
	CategoryUnknown  Category = "unknown"
)

// ctaMarkers is the vocabulary that counts as an existing call-to-action.
var ctaMarkers = []string{"disponibilità", "prenota", "villa celi", "palinuro"}

// domainMarkers is the vocabulary that counts as staying on-topic.
var domainMarkers = []string{"villa celi", "palinuro", "cilento"}

var ctaByCategory = map[Category]string{
	CategoryWeather:  "💡 **Il tempo è perfetto per Villa Celi!** Scrivi: 'disponibilità luglio 2025'",
	CategoryFood:     "💡 **Prenota Villa Celi per gustare il Cilento!** Scrivi: 'disponibilità agosto 2025'",
	CategoryActivity: "💡 **Vivi Palinuro da Villa Celi!** Scrivi: 'disponibilità settembre 2025'",
	CategoryGeneric:  "💡 **Scopri Villa Celi a Palinuro!** Scrivi: 'disponibilità luglio 2025'",
	CategoryUnknown:  "💡 **Ti aiuto con Villa Celi!** Scrivi: 'disponibilità agosto 2025'",
}

// anchorsByCategory are the two domain-anchoring lines prepended when a
// generated reply drifts off Villa Celi entirely.
var anchorsByCategory = map[Category][]string{
	CategoryWeather:  {"🌞 A Palinuro il clima è mediterraneo tutto l'anno!", "Villa Celi è la base perfetta per goderti il sole del Cilento."},
	CategoryFood:     {"🍝 Il Cilento offre cucina autentica a km zero!", "Da Villa Celi raggiungi i migliori ristoranti di Palinuro."},
	CategoryActivity: {"🏖️ Palinuro offre mare, natura e cultura!", "Villa Celi è il punto di partenza ideale per esplorare."},
	CategoryGeneric:  {"🏖️ Villa Celi a Palinuro ti aspetta!", "Nel cuore del Cilento, a 300m dal mare."},
}

var fallbacks = map[Category]string{
	CategoryWeather:  "🌞 **Il tempo a Palinuro è ottimo tutto l'anno!**\n🏖️ Perfetto per le vacanze al mare.\n💡 **Pianifica il soggiorno**: 'disponibilità luglio 2025'",
	CategoryFood:     "🍝 **Ti aiuto con le prenotazioni, non le ricette!**\n🏖️ Ma a Palinuro trovi cucina cilentana autentica.\n💡 **Prenota Villa Celi**: 'disponibilità agosto 2025'",
	CategoryActivity: "🏖️ **A Palinuro ci sono mille attività!**\n🌊 Mare, grotte, trekking, cultura del Cilento.\n💡 **Prenota l'avventura**: 'disponibilità settembre 2025'",
	CategoryUnknown:  "🤔 **Non ho capito la richiesta**.\n🔍 **Prova**: 'disponibilità luglio 2025' o 'dove si trova'\n💡 **Oppure scrivi 'ciao' per ricominciare!**",
}

const emptyFallback = "🤔 **Non ho ricevuto la domanda**.\n💡 **Prova**: 'disponibilità luglio 2025' o 'dove si trova Villa Celi'"

// ClassifyCategory picks the topic of the original guest message so
// the CTA matches what the guest asked about.
func ClassifyCategory(message string) Category {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "tempo", "meteo", "clima", "pioggia", "sole"):
		return CategoryWeather
	case containsAny(lower, "mangiare", "ristorante", "cibo", "ricetta", "cucina"):
		return CategoryFood
	case containsAny(lower, "fare", "attività", "visitare", "vedere", "divertimento"):
		return CategoryActivity
	default:
		return CategoryGeneric
	}
}

// Shape post-processes a generated reply so it leaves the engine with
// at most MaxLines non-empty lines, a call-to-action, and the focus on
// Villa Celi. Rewrites happen around the final line, which after CTA
// injection is always the CTA itself.
func Shape(raw string, category Category) string {
	if strings.TrimSpace(raw) == "" {
		return emptyFallback
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	lowerRaw := strings.ToLower(raw)
	hasCTA := containsAny(lowerRaw, ctaMarkers...)

	// Truncate when over the cap, and also when the reply sits exactly
	// at the cap with no CTA: appending one must never push the line
	// count past MaxLines. Truncation always forces a fresh CTA.
	if len(lines) > MaxLines || (len(lines) == MaxLines && !hasCTA) {
		lines = lines[:MaxLines-1]
		hasCTA = false
	}

	if !hasCTA {
		lines = append(lines, CTA(category))
	}

	if !containsAny(lowerRaw, domainMarkers...) {
		anchors, ok := anchorsByCategory[category]
		if !ok {
			anchors = anchorsByCategory[CategoryGeneric]
		}
		// Keep only the closing CTA line and rebuild the body around it.
		lines = append(append([]string{}, anchors...), lines[len(lines)-1])
	}

	return strings.Join(lines, "\n")
}

// CTA returns the category-specific call-to-action line.
func CTA(category Category) string {
	if cta, ok := ctaByCategory[category]; ok {
		return cta
	}
	return ctaByCategory[CategoryGeneric]
}

// Fallback returns the fixed, pre-shaped reply for a category when no
// generated text is available. Fallbacks are never run through Shape.
func Fallback(category Category) string {
	if msg, ok := fallbacks[category]; ok {
		return msg
	}
	return fallbacks[CategoryUnknown]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
