package hotels

import (
	"strings"

	"github.com/hterhoeven/cardlens/model"
)

// HospitalityKeywords mark a scanned card as a likely hospitality contact.
var HospitalityKeywords = []string{
	"hotel", "resort", "inn", "lodge", "suites", "hospitality",
	"accommodation", "guest house", "motel", "villa", "stay",
	"manager", "reception", "booking", "reservation",
}

// DerivedRating is the default rating for entries synthesized from cards.
const DerivedRating = 4.0

// IsHospitalityCard reports whether a card's raw text, company or title
// contains a hospitality keyword.
func IsHospitalityCard(card *model.Card) bool {
	text := strings.ToLower(card.RawText)
	company := strings.ToLower(card.Organization.Company)
	title := strings.ToLower(card.Personal.Title)

	for _, keyword := range HospitalityKeywords {
		if strings.Contains(text, keyword) ||
			strings.Contains(company, keyword) ||
			strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// DeriveFromCards synthesizes hotel entries from cards that look like
// hospitality contacts. Derived entries have no numeric price and carry the
// card's manager as a direct contact. The location falls back to the card's
// first postal address; entries without one are location-agnostic and pass
// the location filter so scanned contacts always merge into results.
func DeriveFromCards(cards []*model.Card) []*model.Hotel {
	var derived []*model.Hotel
	for _, card := range cards {
		if !IsHospitalityCard(card) {
			continue
		}

		name := card.Organization.Company
		if name == "" {
			name = "Hotel"
		}

		var location string
		if len(card.Contact.Addresses) > 0 {
			location = card.Contact.Addresses[0]
		}

		derived = append(derived, &model.Hotel{
			ID:             card.ID,
			Name:           name,
			Location:       location,
			Rating:         DerivedRating,
			PriceOnRequest: true,
			Source:         model.HotelSourceDerived,
			ManagerContact: &model.ManagerContact{
				Name:          card.Personal.Name,
				Title:         card.Personal.Title,
				Phone:         firstValue(card.Contact.Phones),
				Email:         firstValue(card.Contact.Emails),
				DirectContact: true,
			},
		})
	}
	return derived
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
