package classify

import (
	"strings"

	"github.com/hterhoeven/cardlens/model"
)

// Result is the structured output of classifying one card's raw text. Absent
// fields are empty strings and empty slices, never nil maps or errors.
type Result struct {
	RawText      string
	Lines        []string
	Personal     model.Personal
	Organization model.Organization
	Contact      model.Contact
	Metadata     model.CardMetadata
}

// PrimaryEmail returns the first extracted email, or "".
func (r *Result) PrimaryEmail() string { return first(r.Contact.Emails) }

// PrimaryPhone returns the first extracted phone number, or "".
func (r *Result) PrimaryPhone() string { return first(r.Contact.Phones) }

// PrimaryURL returns the first extracted URL, or "".
func (r *Result) PrimaryURL() string { return first(r.Contact.URLs) }

// PrimaryAddress returns the first extracted postal address, or "".
func (r *Result) PrimaryAddress() string { return first(r.Contact.Addresses) }

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Classify turns the raw OCR text of a card's front and back side into a
// structured result. It is a best-effort heuristic over the fixed rule table
// and never fails: garbage input yields a mostly empty result.
func Classify(frontText, backText string) *Result {
	combined := frontText + "\n" + backText

	var lines []string
	for _, raw := range strings.Split(combined, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}

	// Global candidate lists come from the full combined text so that values
	// spanning line context are not missed, deduplicated in first-seen order.
	emails := dedupFold(EmailPattern.FindAllString(combined, -1))
	phones := dedup(PhonePattern.FindAllString(combined, -1))
	urls := dedup(URLPattern.FindAllString(combined, -1))
	addresses := dedup(AddressPattern.FindAllString(combined, -1))

	analyzed := make([]Line, len(lines))
	for i, line := range lines {
		analyzed[i] = AnalyzeLine(line)
	}

	name := selectName(analyzed)
	title := selectTitle(analyzed)
	company := selectCompany(analyzed)
	department := selectDepartment(analyzed)

	extracted := 0
	for _, field := range []string{name, title, company} {
		if strings.TrimSpace(field) != "" {
			extracted++
		}
	}

	return &Result{
		RawText: combined,
		Lines:   lines,
		Personal: model.Personal{
			Name:  strings.TrimSpace(name),
			Title: strings.TrimSpace(title),
		},
		Organization: model.Organization{
			Company:    strings.TrimSpace(company),
			Department: strings.TrimSpace(department),
		},
		Contact: model.Contact{
			Emails:    emails,
			Phones:    phones,
			URLs:      urls,
			Addresses: addresses,
		},
		Metadata: model.CardMetadata{
			TotalLines:      len(lines),
			ExtractedFields: extracted,
			ContactMethods:  len(emails) + len(phones) + len(urls),
		},
	}
}

// selectName picks the first short non-contact line that looks like a person's
// name. Earlier lines always win.
func selectName(lines []Line) string {
	for _, line := range lines {
		if line.IsProbablyName && !line.IsContact && line.Length > 3 && line.Length < 50 {
			return line.Text
		}
	}
	return ""
}

// selectTitle picks the first line with a title keyword that is not a contact
// line.
func selectTitle(lines []Line) string {
	for _, line := range lines {
		if line.IsTitle && !line.IsContact {
			return line.Text
		}
	}
	return ""
}

// selectCompany picks the first line with a company keyword, falling back to
// the first longer line that is neither contact, title nor name-like. Contact
// lines are excluded in both cases. The fallback intentionally accepts any
// boring long line; this is best effort, not a guarantee.
func selectCompany(lines []Line) string {
	for _, line := range lines {
		explicit := line.IsCompany
		fallback := !line.IsContact && !line.IsTitle && !line.IsProbablyName && line.Length > 5
		if (explicit || fallback) && !line.IsContact {
			return line.Text
		}
	}
	return ""
}

// selectDepartment picks the first line with a department keyword.
func selectDepartment(lines []Line) string {
	for _, line := range lines {
		if line.IsDepartment {
			return line.Text
		}
	}
	return ""
}
