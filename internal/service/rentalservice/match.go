package rentalservice

import (
	"strings"
	"unicode"
)

// cleanText lowercases the text and strips everything but letters, digits
// and single spaces, so marketplace order descriptions with emoji and
// punctuation still match catalog names.
func cleanText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// MatchName picks the catalog name for an order description: among the
// names whose cleaned form is a substring of the cleaned description, the
// longest one wins ties.
func MatchName(description string, names []string) (string, bool) {
	cleaned := cleanText(description)
	if cleaned == "" {
		return "", false
	}

	var best string
	bestLen := 0
	for _, name := range names {
		cleanedName := cleanText(name)
		if cleanedName == "" {
			continue
		}
		if strings.Contains(cleaned, cleanedName) && len(cleanedName) > bestLen {
			best = name
			bestLen = len(cleanedName)
		}
	}
	return best, best != ""
}
