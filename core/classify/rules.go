package classify

import (
	"regexp"
	"strings"
)

// The classifier is a fixed rule table: four pattern matchers and three
// keyword vocabularies. Rules are package-level so they can be unit-tested
// independently of the line-scanning loop.

// EmailPattern matches local@domain.tld shaped tokens.
var EmailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// PhonePattern matches North-American-style phone numbers with an optional
// country code, optional parentheses and ./-/space separators.
var PhonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

// URLPattern matches http(s) URLs, www-prefixed hosts and bare tokens ending
// in a well-known TLD.
var URLPattern = regexp.MustCompile(`(?i)(https?://[^\s]+|www\.[^\s]+|[a-zA-Z0-9.-]+\.(com|org|net|edu|gov|io|co)\b)`)

// AddressPattern matches a leading street number followed by word tokens and a
// recognized street-type suffix.
var AddressPattern = regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s,.-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Circle|Cir|Way|Plaza|Place|Pl)\b`)

// TitleKeywords are role and seniority words marking a job-title line.
var TitleKeywords = []string{
	"ceo", "cto", "cfo", "manager", "director", "president", "vice president",
	"vp", "engineer", "developer", "designer", "analyst", "consultant",
	"specialist", "coordinator", "assistant", "executive", "officer", "founder",
	"partner", "sales", "marketing", "hr", "human resources", "finance",
	"operations", "senior", "junior", "lead", "principal", "chief",
}

// CompanyKeywords are legal-entity suffixes and business-category words
// marking a company line.
var CompanyKeywords = []string{
	"inc", "llc", "corp", "ltd", "company", "co", "corporation", "limited",
	"group", "holdings", "enterprises", "solutions", "services", "technologies",
	"tech", "systems", "consulting", "associates", "partners",
}

// DepartmentKeywords are organizational-unit words marking a department line.
var DepartmentKeywords = []string{
	"department", "dept", "division", "team", "unit", "group", "office",
}

// Line is one input line annotated with classification flags. Lines are
// transient; they are derived purely from the line text and discarded after
// field selection.
type Line struct {
	Text           string
	IsEmail        bool
	IsPhone        bool
	IsURL          bool
	IsAddress      bool
	IsTitle        bool
	IsCompany      bool
	IsDepartment   bool
	IsContact      bool
	IsProbablyName bool
	Length         int
}

// AnalyzeLine classifies a single trimmed line against the full rule table.
func AnalyzeLine(text string) Line {
	hasEmail := EmailPattern.MatchString(text)
	hasPhone := PhonePattern.MatchString(text)
	hasURL := URLPattern.MatchString(text)
	hasAddress := AddressPattern.MatchString(text)

	hasTitle := containsKeyword(text, TitleKeywords)
	hasCompany := containsKeyword(text, CompanyKeywords)
	hasDepartment := containsKeyword(text, DepartmentKeywords)

	return Line{
		Text:         text,
		IsEmail:      hasEmail,
		IsPhone:      hasPhone,
		IsURL:        hasURL,
		IsAddress:    hasAddress,
		IsTitle:      hasTitle,
		IsCompany:    hasCompany,
		IsDepartment: hasDepartment,
		IsContact:    hasEmail || hasPhone || hasURL,
		IsProbablyName: !hasEmail && !hasPhone && !hasURL &&
			!hasTitle && !hasCompany &&
			len(strings.Fields(text)) <= 4 && len(text) > 2,
		Length: len(text),
	}
}

func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
