// Package naming provides the identifier transforms used when planning
// member renames and display names. Introspection member names arrive in
// snake_case ("get_first_child") and signal names in kebab-case
// ("notify::visible-child" style dashes), so the transforms split on
// underscores, dashes, and existing case boundaries.
package naming

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a name to PascalCase.
// "get_first_child" -> "GetFirstChild", "closed" -> "Closed".
func ToPascalCase(name string) string {
	words := splitWords(name)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToCamelCase converts a name to camelCase.
// "get_first_child" -> "getFirstChild".
func ToCamelCase(name string) string {
	words := splitWords(name)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// splitWords breaks a name on underscores, dashes, spaces, and
// lower-to-upper case boundaries. Words are returned lowercased except
// that all-caps words are treated as single words.
func splitWords(name string) []string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	var prev rune
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == ':':
			flush()
		case unicode.IsUpper(r) && prev != 0 && !unicode.IsUpper(prev):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
