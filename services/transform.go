package services

import (
	"regexp"
	"strings"

	"auction-normalizer/models"
)

// currencyRegexp matches every rune that is not an ASCII digit or a dot.
// Stripping these removes the currency symbol and thousands separators.
var currencyRegexp = regexp.MustCompile(`[^0-9.]`)

// months maps the dumps' 3-letter month abbreviations to the 2-digit form
// used in emitted timestamps.
var months = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// IsJSONFile reports whether name ends in the literal suffix ".json". The
// match is exact and case-sensitive; no path normalization is done.
func IsJSONFile(name string) bool {
	return len(name) > 5 && strings.HasSuffix(name, ".json")
}

// NormalizeMonth converts a month abbreviation to its numeric form, e.g.
// "Dec" to "12". Unknown tokens pass through unchanged.
func NormalizeMonth(mon string) string {
	if m, ok := months[mon]; ok {
		return m
	}
	return mon
}

// NormalizeTimestamp converts "Mon-DD-YY HH:MM:SS" to
// "20YY-MM-DD HH:MM:SS", which sorts chronologically as text. The corpus
// predates 2070, so the two-digit year is always prefixed with "20".
func NormalizeTimestamp(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), " ")
	if len(parts) != 2 {
		return "", &FormatError{Value: raw, Reason: `want "Mon-DD-YY HH:MM:SS"`}
	}
	date := strings.Split(parts[0], "-")
	if len(date) != 3 {
		return "", &FormatError{Value: raw, Reason: `want "Mon-DD-YY" date part`}
	}
	return "20" + date[2] + "-" + NormalizeMonth(date[0]) + "-" + date[1] + " " + parts[1], nil
}

// NormalizeCurrency strips the currency symbol and thousands separators
// from an amount like "$3,453.23", leaving "3453.23". A nil or empty value
// passes through unchanged; no decimal validation is performed.
func NormalizeCurrency(t *models.Text) string {
	if t == nil || *t == "" {
		return ""
	}
	return currencyRegexp.ReplaceAllString(string(*t), "")
}

// QuoteEscape wraps a free-text field in double quotes, doubling any
// embedded quote. A nil (missing or null) value becomes the quoted literal
// "NULL" expected by the bulk loader. No other character is escaped.
func QuoteEscape(t *models.Text) string {
	if t == nil {
		return `"NULL"`
	}
	return `"` + strings.ReplaceAll(string(*t), `"`, `""`) + `"`
}
