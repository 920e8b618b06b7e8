package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card represents one scanned business card after classification.
// Cards are created once by the scan/import flow and never updated in place;
// re-scanning a card produces a new record.
type Card struct {
	ID           string       `json:"id"`
	FrontImage   string       `json:"front_image,omitempty"`
	BackImage    string       `json:"back_image,omitempty"`
	RawText      string       `json:"raw_text"`
	Personal     Personal     `json:"personal"`
	Organization Organization `json:"organization"`
	Contact      Contact      `json:"contact"`
	Metadata     CardMetadata `json:"metadata"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Personal holds the person-level fields extracted from a card.
type Personal struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// Organization holds the company-level fields extracted from a card.
type Organization struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
}

// Contact holds all contact methods found on a card. Emails are stored
// lower-cased and deduplicated; phones, urls and addresses keep their
// original formatting and are deduplicated by exact value.
type Contact struct {
	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	URLs      []string `json:"urls"`
	Addresses []string `json:"addresses"`
}

// CardMetadata holds derived counts about the classification result.
type CardMetadata struct {
	TotalLines      int `json:"total_lines"`
	ExtractedFields int `json:"extracted_fields"`
	ContactMethods  int `json:"contact_methods"`
}

// NewRecordID returns a unique, creation-ordered record ID. The millisecond
// timestamp prefix keeps IDs roughly monotonic, the uuid suffix makes them
// unique even within the same millisecond.
func NewRecordID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// DisplayName returns the best human-readable label for a card: the extracted
// name, then the company, then "Unknown". Used for delete confirmations and
// list rendering.
func (c *Card) DisplayName() string {
	if name := strings.TrimSpace(c.Personal.Name); name != "" {
		return name
	}
	if company := strings.TrimSpace(c.Organization.Company); company != "" {
		return company
	}
	return "Unknown"
}

// HasEmail reports whether the card has at least one email address.
func (c *Card) HasEmail() bool { return len(c.Contact.Emails) > 0 }

// HasPhone reports whether the card has at least one phone number.
func (c *Card) HasPhone() bool { return len(c.Contact.Phones) > 0 }

// HasWebsite reports whether the card has at least one URL.
func (c *Card) HasWebsite() bool { return len(c.Contact.URLs) > 0 }

// IsOrganized reports whether classification extracted either a personal name
// or a company for the card.
func (c *Card) IsOrganized() bool {
	return strings.TrimSpace(c.Personal.Name) != "" || strings.TrimSpace(c.Organization.Company) != ""
}

// SearchableText concatenates every searchable field of the card, lower-cased.
// The query engine matches search terms against this string.
func (c *Card) SearchableText() string {
	parts := []string{
		c.RawText,
		c.Personal.Name,
		c.Personal.Title,
		c.Organization.Company,
		c.Organization.Department,
	}
	parts = append(parts, c.Contact.Emails...)
	parts = append(parts, c.Contact.Phones...)
	parts = append(parts, c.Contact.URLs...)
	return strings.ToLower(strings.Join(parts, " "))
}
