package match

import (
	"strings"
	"unicode"
)

// schemaSuffixes are naming conventions schema authors append or forget.
var schemaSuffixes = []string{"converter", "mapping", "array", "list"}

// NormalizeIdent lowercases s and drops separators, so "dynamic_obstacle",
// "DynamicObstacle" and "dynamic-obstacle" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// StripSchemaSuffix removes one trailing convention suffix such as
// "Converter" from an already normalized identifier.
func StripSchemaSuffix(norm string) string {
	for _, suffix := range schemaSuffixes {
		if strings.HasSuffix(norm, suffix) && len(norm) > len(suffix) {
			return strings.TrimSuffix(norm, suffix)
		}
	}

	return norm
}

// TokenizeIdent splits a CamelCase or snake_case identifier into lowercase
// tokens: "HPAPathState" becomes ["hpa", "path", "state"].
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
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
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower→upper transition or the last capital of an
// acronym followed by a lowercase letter ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return unicode.IsDigit(r) != unicode.IsDigit(prev) && !isSeparator(prev)
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
