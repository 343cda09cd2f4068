package naming

import (
	"strings"
	"unicode"
)

// Reserved words that a derived display identifier must not collide with.
// The set covers ECMAScript reserved words since downstream emitters target
// JSX-style surfaces.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "implements": true,
	"import": true, "in": true, "instanceof": true, "interface": true,
	"let": true, "new": true, "null": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"static": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "type": true,
	"typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

// EscapeReserved escapes a reserved word by appending an underscore.
func EscapeReserved(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// SanitizeIdentifier makes a name a valid identifier: leading digits are
// prefixed with an underscore, invalid characters are replaced with
// underscores, and reserved words are escaped.
func SanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}

	var result strings.Builder
	if unicode.IsDigit(rune(name[0])) {
		result.WriteRune('_')
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	return EscapeReserved(result.String())
}
