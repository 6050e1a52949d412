// File: services/conversation/format.go
package conversation

import (
	"fmt"
	"strings"
	"time"

	"paguro/models"
)

var italianMonths = []string{"", "Gennaio", "Febbraio", "Marzo", "Aprile",
	"Maggio", "Giugno", "Luglio", "Agosto", "Settembre", "Ottobre",
	"Novembre", "Dicembre"}

// formatDateItalian turns an ISO date into "5 Luglio"; a date that
// fails to parse is returned unchanged.
func formatDateItalian(iso string) string {
	date, err := time.Parse(dateLayout, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d %s", date.Day(), italianMonths[int(date.Month())])
}

// formatAvailabilityMessage renders the result set grouped by
// apartment, each week numbered by its global index, with the closing
// instruction to reply with a number.
func formatAvailabilityMessage(weeks []models.AvailabilityWeek) string {
	parts := []string{"✅ **Disponibilità trovate** (settimane sabato-sabato):\n"}

	currentApartment := ""
	for _, week := range weeks {
		if week.Apartment != currentApartment {
			currentApartment = week.Apartment
			parts = append(parts, fmt.Sprintf("\n🏠 **Appartamento: %s**", week.Apartment))
		}
		parts = append(parts, fmt.Sprintf("**%d.** 📅 Da sabato %s a sabato %s",
			week.Index, week.CheckInFormatted, week.CheckOutFormatted))
	}

	parts = append(parts, "\n💡 **Per prenotare**, scrivi il numero che preferisci. Esempio: *\"voglio prenotare la 1\"*")
	return strings.Join(parts, "\n")
}

// formatBookingConfirmation renders the chosen week with the redirect
// notice for the booking form.
func formatBookingConfirmation(week *models.AvailabilityWeek) string {
	return fmt.Sprintf("🎉 **Perfetto!** Hai scelto:\n\n🏠 **%s**\n📅 **Dal** sabato %s **al** sabato %s\n\n⏳ **Ti sto reindirizzando al form di prenotazione...**",
		week.Apartment, week.CheckInFormatted, week.CheckOutFormatted)
}
