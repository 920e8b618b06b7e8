package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordID(t *testing.T) {
	t.Run("IDs are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := NewRecordID()
			assert.False(t, seen[id], "Expected no duplicate IDs")
			seen[id] = true
		}
	})
}

func TestCardDisplayName(t *testing.T) {
	t.Run("Name wins over company", func(t *testing.T) {
		card := &Card{
			Personal:     Personal{Name: "John Smith"},
			Organization: Organization{Company: "Acme Technologies Inc"},
		}

		assert.Equal(t, "John Smith", card.DisplayName(), "Expected the personal name")
	})

	t.Run("Company is the fallback", func(t *testing.T) {
		card := &Card{Organization: Organization{Company: "Acme Technologies Inc"}}

		assert.Equal(t, "Acme Technologies Inc", card.DisplayName(), "Expected the company")
	})

	t.Run("Unknown is the last resort", func(t *testing.T) {
		assert.Equal(t, "Unknown", (&Card{}).DisplayName(), "Expected the unknown label")
	})
}

func TestCardPredicates(t *testing.T) {
	t.Run("Contact predicates reflect the slices", func(t *testing.T) {
		card := &Card{Contact: Contact{Emails: []string{"a@b.com"}}}

		assert.True(t, card.HasEmail(), "Expected an email")
		assert.False(t, card.HasPhone(), "Expected no phone")
		assert.False(t, card.HasWebsite(), "Expected no website")
	})

	t.Run("IsOrganized needs a name or a company", func(t *testing.T) {
		assert.False(t, (&Card{}).IsOrganized(), "Expected an empty card to not be organized")
		assert.True(t, (&Card{Personal: Personal{Name: "John"}}).IsOrganized(), "Expected a named card to be organized")
		assert.True(t, (&Card{Organization: Organization{Company: "Acme"}}).IsOrganized(), "Expected a company card to be organized")
	})
}

func TestCardSearchableText(t *testing.T) {
	t.Run("Searchable text is lower-cased and spans all fields", func(t *testing.T) {
		card := &Card{
			RawText:      "Raw TEXT",
			Personal:     Personal{Name: "John Smith", Title: "CEO"},
			Organization: Organization{Company: "Acme Inc", Department: "Sales"},
			Contact: Contact{
				Emails: []string{"John@Acme.com"},
				Phones: []string{"555-123-4567"},
				URLs:   []string{"www.acme.com"},
			},
		}

		text := card.SearchableText()

		assert.Contains(t, text, "raw text", "Expected the raw text lower-cased")
		assert.Contains(t, text, "john smith", "Expected the name")
		assert.Contains(t, text, "ceo", "Expected the title")
		assert.Contains(t, text, "acme inc", "Expected the company")
		assert.Contains(t, text, "sales", "Expected the department")
		assert.Contains(t, text, "john@acme.com", "Expected the email lower-cased")
		assert.Contains(t, text, "555-123-4567", "Expected the phone")
		assert.Contains(t, text, "www.acme.com", "Expected the url")
	})
}
