package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullCardText = `John Smith
Senior Software Engineer
Acme Technologies Inc
john.smith@acme.com
+1 (555) 123-4567
www.acme.com
123 Main Street, Springfield`

func TestClassify(t *testing.T) {
	t.Run("Classify full card extracts all fields", func(t *testing.T) {
		result := Classify(fullCardText, "")

		require.NotNil(t, result, "Expected Classify to return a result")
		assert.Equal(t, "John Smith", result.Personal.Name, "Expected the name line to be selected")
		assert.Equal(t, "Senior Software Engineer", result.Personal.Title, "Expected the title line to be selected")
		assert.Equal(t, "Acme Technologies Inc", result.Organization.Company, "Expected the company line to be selected")
		assert.Equal(t, []string{"john.smith@acme.com"}, result.Contact.Emails, "Expected the email to be extracted")
		assert.Equal(t, []string{"+1 (555) 123-4567"}, result.Contact.Phones, "Expected the phone to be extracted")
		assert.Contains(t, result.Contact.URLs, "www.acme.com", "Expected the website to be extracted")
		require.NotEmpty(t, result.Contact.Addresses, "Expected an address to be extracted")
		assert.Equal(t, "123 Main Street", result.Contact.Addresses[0], "Expected the street address to be extracted")
	})

	t.Run("Classify counts metadata", func(t *testing.T) {
		result := Classify(fullCardText, "")

		assert.Equal(t, 7, result.Metadata.TotalLines, "Expected every non-blank line to be counted")
		assert.Equal(t, 3, result.Metadata.ExtractedFields, "Expected name, title and company to count as extracted")
		expected := len(result.Contact.Emails) + len(result.Contact.Phones) + len(result.Contact.URLs)
		assert.Equal(t, expected, result.Metadata.ContactMethods, "Expected contact methods to equal emails plus phones plus urls")
	})

	t.Run("Classify combines front and back text", func(t *testing.T) {
		result := Classify("John Smith", "john.smith@acme.com")

		assert.Equal(t, "John Smith", result.Personal.Name, "Expected the name from the front side")
		assert.Equal(t, []string{"john.smith@acme.com"}, result.Contact.Emails, "Expected the email from the back side")
		assert.Equal(t, 2, result.Metadata.TotalLines, "Expected lines from both sides to be counted")
	})

	t.Run("Classify deduplicates emails case-insensitively", func(t *testing.T) {
		result := Classify("John.Smith@ACME.com\njohn.smith@acme.com", "")

		assert.Equal(t, []string{"john.smith@acme.com"}, result.Contact.Emails,
			"Expected case variants of the same email to collapse into one lower-cased value")
	})

	t.Run("Classify deduplicates repeated phones", func(t *testing.T) {
		result := Classify("+1 (555) 123-4567\n+1 (555) 123-4567", "")

		assert.Equal(t, []string{"+1 (555) 123-4567"}, result.Contact.Phones,
			"Expected the repeated phone to appear once")
	})

	t.Run("Classify never fails on empty input", func(t *testing.T) {
		result := Classify("", "")

		require.NotNil(t, result, "Expected a result even for empty input")
		assert.Equal(t, 0, result.Metadata.TotalLines, "Expected no lines")
		assert.Empty(t, result.Contact.Emails, "Expected no emails")
		assert.NotNil(t, result.Contact.Emails, "Expected an empty slice, not nil")
		assert.NotNil(t, result.Contact.Phones, "Expected an empty slice, not nil")
		assert.NotNil(t, result.Contact.URLs, "Expected an empty slice, not nil")
		assert.NotNil(t, result.Contact.Addresses, "Expected an empty slice, not nil")
	})

	t.Run("Classify never fails on garbage input", func(t *testing.T) {
		result := Classify("@@@@\n####\n!!!", "")

		require.NotNil(t, result, "Expected a result for garbage input")
		assert.Empty(t, result.Contact.Emails, "Expected no emails in garbage")
		assert.Empty(t, result.Contact.Phones, "Expected no phones in garbage")
		assert.Empty(t, result.Contact.URLs, "Expected no urls in garbage")
		assert.Empty(t, result.Personal.Title, "Expected no title in garbage")
	})

	t.Run("Classify selects first matching name line", func(t *testing.T) {
		result := Classify("Jane Doe\nJohn Smith", "")

		assert.Equal(t, "Jane Doe", result.Personal.Name, "Expected the earlier name-like line to win")
	})

	t.Run("Classify falls back to a long plain line for the company", func(t *testing.T) {
		result := Classify("Jane Doe\nBeautiful Flowers And More Shop", "")

		assert.Equal(t, "Jane Doe", result.Personal.Name, "Expected the short line as name")
		assert.Equal(t, "Beautiful Flowers And More Shop", result.Organization.Company,
			"Expected the long non-contact non-title line as company fallback")
	})

	t.Run("Classify picks a department line", func(t *testing.T) {
		result := Classify("John Smith\nEngineering Department", "")

		assert.Equal(t, "Engineering Department", result.Organization.Department,
			"Expected the department keyword line to be selected")
	})
}

func TestResultPrimaryAccessors(t *testing.T) {
	t.Run("Primary accessors return the first value", func(t *testing.T) {
		result := Classify(fullCardText, "")

		assert.Equal(t, "john.smith@acme.com", result.PrimaryEmail(), "Expected the first email")
		assert.Equal(t, "+1 (555) 123-4567", result.PrimaryPhone(), "Expected the first phone")
		assert.NotEmpty(t, result.PrimaryURL(), "Expected a primary url")
		assert.Equal(t, "123 Main Street", result.PrimaryAddress(), "Expected the first address")
	})

	t.Run("Primary accessors return empty string for empty result", func(t *testing.T) {
		result := Classify("", "")

		assert.Equal(t, "", result.PrimaryEmail(), "Expected empty primary email")
		assert.Equal(t, "", result.PrimaryPhone(), "Expected empty primary phone")
		assert.Equal(t, "", result.PrimaryURL(), "Expected empty primary url")
		assert.Equal(t, "", result.PrimaryAddress(), "Expected empty primary address")
	})
}
