package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: CamelCase and
// separators (_, -, ., space) are dropped and everything is lowercased.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words.
func TokenizeIdent(s string) []string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenize splits on separators and CamelCase boundaries.
// Examples:
//   - "StaticArray" -> ["Static", "Array"]
//   - "static_array" -> ["static", "array"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "store.OrderLine" -> ["store", "Order", "Line"]
func tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// startsToken reports whether runes[i] opens a new CamelCase word.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// lower -> Upper: "orderID" splits before 'I'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// End of an acronym: "XMLParser" splits before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
