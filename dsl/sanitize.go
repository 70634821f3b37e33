package dsl

import (
	"strings"
	"unicode"
)

// reservedWords holds TypeScript keywords and literals plus a small set
// of soft reserved words that would make generated declarations
// ambiguous. Plain constant table, never mutated.
var reservedWords = map[string]struct{}{
	// keywords and literals
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "instanceof": {}, "new": {}, "null": {}, "return": {},
	"super": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},
	"implements": {}, "interface": {}, "let": {}, "package": {},
	"private": {}, "protected": {}, "public": {}, "static": {}, "yield": {},
	"await": {}, "as": {}, "async": {}, "never": {}, "object": {},
	"undefined": {},
	// soft reserved words
	"type": {}, "from": {}, "of": {}, "get": {}, "set": {}, "module": {},
	"require": {}, "any": {}, "unknown": {}, "string": {}, "number": {},
	"boolean": {}, "symbol": {},
}

func isReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// isIdentSeparator reports whether r splits a raw token into segments
func isIdentSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// stripInvalid removes every character outside [A-Za-z0-9_$]
func stripInvalid(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '_' || r == '$' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// pascalJoin splits raw on separator runs, cleans each segment, and
// joins them with every segment's first letter capitalized
func pascalJoin(raw string) string {
	parts := strings.FieldsFunc(raw, isIdentSeparator)

	var sb strings.Builder
	for _, part := range parts {
		cleaned := stripInvalid(part)
		if cleaned == "" {
			continue
		}
		runes := []rune(cleaned)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	return sb.String()
}

// SanitizeTypeName turns an arbitrary raw token into a safe PascalCase
// type identifier. Empty results default to "Type"; reserved-word
// collisions get a "Type" suffix. Deterministic and idempotent.
func SanitizeTypeName(raw string) string {
	name := pascalJoin(raw)
	if name == "" {
		return "Type"
	}
	if isReserved(name) {
		name += "Type"
	}
	return name
}

// SanitizePropertyName turns an arbitrary raw token into a safe
// camelCase property identifier. Empty results default to "prop";
// names starting with a digit get a leading underscore; reserved-word
// collisions get a trailing underscore.
func SanitizePropertyName(raw string) string {
	name := pascalJoin(raw)
	if name == "" {
		return "prop"
	}

	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	name = string(runes)

	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	if isReserved(name) {
		name += "_"
	}
	return name
}
