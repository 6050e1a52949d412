// File: services/conversation/predefined.go
package conversation

import (
	"strings"

	"paguro/models"
)

// predefinedAnswers is the curated FAQ table. Declaration order is the
// direct-match traversal order, so it doubles as the tie-break when a
// message contains several keys.
var predefinedAnswers = []models.PredefinedAnswer{
	{
		Key:     "come si arriva",
		Message: "🗺️ **Villa Celi si trova a Palinuro**, nel cuore del Cilento. Raggiungi facilmente:\n🚗 A3, uscita Battipaglia → SS18 (1h) o Sala Consilina → SS517 (45min)\n🚂 Stazione Pisciotta-Palinuro (5km)\n\n💡 **Prenota ora**: 'disponibilità luglio 2025'",
	},
	{
		Key:     "dove si trova",
		Message: "📍 **Villa Celi è a Palinuro**, nel Parco Nazionale del Cilento.\nUna perla affacciata sul mare cristallino! 🌊🏞️\n\n💡 **Scopri le date libere**: 'disponibilità agosto 2025'",
	},
	{
		Key:     "cosa",
		Message: "🌊 **A Palinuro**: spiagge dorate, Grotta Azzurra, Faro al tramonto, siti archeologici di Velia.\n🥾 Trekking nel Cilento, cucina tipica, sport acquatici.\n\n💡 **Prenota l'esperienza**: 'disponibilità settembre 2025'",
	},
	{
		Key:     "attività",
		Message: "🌊 **A Palinuro**: spiagge dorate, Grotta Azzurra, Faro al tramonto, siti archeologici di Velia.\n🥾 Trekking nel Cilento, cucina tipica, sport acquatici.\n\n💡 **Prenota l'esperienza**: 'disponibilità settembre 2025'",
	},
	{
		Key:     "fare",
		Message: "🌊 **A Palinuro**: spiagge dorate, Grotta Azzurra, Faro al tramonto, siti archeologici di Velia.\n🥾 Trekking nel Cilento, cucina tipica, sport acquatici.\n\n💡 **Prenota l'esperienza**: 'disponibilità settembre 2025'",
	},
	{
		Key:     "spiagge",
		Message: "🏖️ **Spiagge di Palinuro**: Buon Dormire, Marinella, Ficocella, Arco Naturale.\n🚤 Grotta Azzurra raggiungibile in barca. Tutte a 300m da Villa Celi!\n\n💡 **Prenota il mare**: 'disponibilità luglio 2025'",
	},
	{
		Key:     "mare",
		Message: "🌊 **Mare di Palinuro**: acque cristalline Bandiera Blu, fondali ricchi, sport acquatici.\n🏆 Tra i mari più belli d'Italia!\n\n💡 **Prenota il soggiorno**: 'disponibilità agosto 2025'",
	},
	{
		Key:     "servizi",
		Message: "🏠 **Villa Celi**: appartamenti vista mare, WiFi, parcheggio, giardino, cucine attrezzate.\n🏖️ A 300m dalle spiagge, aria condizionata.\n\n💡 **Controlla disponibilità**: 'disponibilità luglio 2025'",
	},
	{
		Key:      "prezzo",
		Message:  "💰 **Prezzi Villa Celi**: tariffe competitive, offerte lunghi soggiorni.\n🏖️ Miglior rapporto qualità-prezzo nel Cilento!\n\n💡 **Verifica costi**: compila il form di prenotazione con le tue date.",
		Redirect: true,
	},
}

// predefinedPriority maps trigger keywords to answer keys and is
// evaluated before the direct key scan. The list order is the declared
// priority; it resolves ties such as "cosa fare in spiaggia" in favour
// of the earlier entry.
var predefinedPriority = []struct {
	Keyword   string
	AnswerKey string
}{
	{"dove", "dove si trova"},
	{"trova", "dove si trova"},
	{"palinuro", "dove si trova"},
	{"arriva", "come si arriva"},
	{"raggiungere", "come si arriva"},
	{"attività", "attività"},
	{"cosa fare", "cosa"},
	{"fare", "fare"},
	{"spiagge", "spiagge"},
	{"mare", "mare"},
	{"servizi", "servizi"},
	{"prezzo", "prezzo"},
	{"prezzi", "prezzo"},
	{"costo", "prezzo"},
	{"quanto costa", "prezzo"},
	{"tariffe", "prezzo"},
	{"preventivo", "prezzo"},
}

func answerByKey(key string) *models.PredefinedAnswer {
	for i := range predefinedAnswers {
		if predefinedAnswers[i].Key == key {
			return &predefinedAnswers[i]
		}
	}
	return nil
}

// findPredefined returns the canned answer for a message, or nil.
func findPredefined(message string) *models.PredefinedAnswer {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range predefinedPriority {
		if strings.Contains(lower, rule.Keyword) {
			if answer := answerByKey(rule.AnswerKey); answer != nil {
				return answer
			}
		}
	}
	for i := range predefinedAnswers {
		if strings.Contains(lower, predefinedAnswers[i].Key) {
			return &predefinedAnswers[i]
		}
	}
	return nil
}
