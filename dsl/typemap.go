package dsl

import "strings"

// typeShorthands maps single-letter DSL type tokens to TypeScript types
var typeShorthands = map[string]string{
	"s": "string",
	"n": "number",
	"b": "boolean",
	"d": "Date",
	"u": "unknown",
	"a": "any",
}

// MapType resolves a DSL type token to a TypeScript type name. Array
// suffixes recurse, so "s[][]" becomes "string[][]". Tokens outside the
// shorthand table pass through verbatim; that is how custom types like
// "UUID" or "Record<string, number>" reach the output unchanged.
func MapType(token string) string {
	t := strings.TrimSpace(token)
	if strings.HasSuffix(t, "[]") {
		return MapType(strings.TrimSuffix(t, "[]")) + "[]"
	}
	if full, ok := typeShorthands[t]; ok {
		return full
	}
	return t
}
