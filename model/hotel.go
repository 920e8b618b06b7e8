package model

import (
	"fmt"
	"strings"
	"time"
)

// HotelSource identifies where a hotel entry came from.
type HotelSource string

const (
	// HotelSourceCatalog marks entries from the static catalog.
	HotelSourceCatalog HotelSource = "catalog"
	// HotelSourceDerived marks entries synthesized from a scanned card that
	// looked like a hospitality contact.
	HotelSourceDerived HotelSource = "derived-from-record"
)

// PriceOnRequest is the sentinel shown for entries without a numeric price,
// typically derived entries where the rate comes from contacting the manager.
const PriceOnRequest = "Contact for rates"

// Hotel is one rankable hotel entry, either from the static catalog or derived
// from a scanned business card.
type Hotel struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Location       string          `json:"location" yaml:"location"`
	Rating         float64         `json:"rating" yaml:"rating"`
	Price          float64         `json:"price,omitempty" yaml:"price"`
	PriceOnRequest bool            `json:"price_on_request,omitempty" yaml:"price_on_request"`
	Currency       string          `json:"currency,omitempty" yaml:"currency"`
	Amenities      []string        `json:"amenities,omitempty" yaml:"amenities"`
	Activities     []string        `json:"activities,omitempty" yaml:"activities"`
	Source         HotelSource     `json:"source" yaml:"source"`
	ManagerContact *ManagerContact `json:"manager_contact,omitempty" yaml:"manager_contact"`
	Score          float64         `json:"score,omitempty" yaml:"-"`
}

// PriceLabel returns the display price: the numeric price with currency, or
// the contact-for-rates sentinel.
func (h *Hotel) PriceLabel() string {
	if h.PriceOnRequest {
		return PriceOnRequest
	}
	if h.Currency != "" {
		return fmt.Sprintf("%.0f %s", h.Price, h.Currency)
	}
	return fmt.Sprintf("%.0f", h.Price)
}

// ManagerContact is the reachable person behind a hotel entry. DirectContact
// is true for entries derived from a scanned card.
type ManagerContact struct {
	Name          string `json:"name,omitempty" yaml:"name"`
	Title         string `json:"title,omitempty" yaml:"title"`
	Phone         string `json:"phone,omitempty" yaml:"phone"`
	Email         string `json:"email,omitempty" yaml:"email"`
	DirectContact bool   `json:"direct_contact" yaml:"direct_contact"`
}

// SearchCriteria is the user input for a hotel search. Location is required;
// everything else is optional.
type SearchCriteria struct {
	Location   string   `json:"location"`
	Budget     float64  `json:"budget,omitempty"`
	Duration   int      `json:"duration,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// Validate rejects criteria that must not reach the ranking engine.
func (c *SearchCriteria) Validate() error {
	if strings.TrimSpace(c.Location) == "" {
		return fmt.Errorf("search location is required")
	}
	return nil
}

// SavedHotelContact is a manager contact the user chose to keep, persisted in
// its own collection.
type SavedHotelContact struct {
	ID             string          `json:"id"`
	HotelID        string          `json:"hotel_id"`
	HotelName      string          `json:"hotel_name"`
	ManagerContact *ManagerContact `json:"manager_contact,omitempty"`
	SavedAt        time.Time       `json:"saved_at"`
}
