package dsl

import (
	"regexp"
	"strings"
)

// booleanPrefixRe matches boolean-ish property names: a known prefix
// followed immediately by any letter or underscore. The loose tail is
// intentional, so "island" infers boolean too; an accepted heuristic
// trade-off, not a bug.
var booleanPrefixRe = regexp.MustCompile(`^(is|has|can|should|did|was)[A-Z_a-z]`)

// InferType guesses a TypeScript type from a sanitized property name.
// It is only consulted when the DSL token carries no explicit type.
// Rule order is significant; the first match wins:
//
//  1. timestamp-ish names ("createdAt", "updatedOn", "dateOfBirth") → Date
//  2. boolean prefixes ("isAdmin", "hasToken") → boolean
//  3. identifier names ("id", "userId", "account_id") → string
//  4. pluralish names (longer than 3 chars, ending in "s") → string[]
//  5. everything else → string
func InferType(name string) string {
	if strings.HasSuffix(name, "At") || strings.HasSuffix(name, "On") ||
		strings.Contains(strings.ToLower(name), "date") {
		return "Date"
	}
	if booleanPrefixRe.MatchString(name) {
		return "boolean"
	}
	if name == "id" || strings.HasSuffix(name, "_id") || strings.HasSuffix(name, "Id") {
		return "string"
	}
	if len(name) > 3 && strings.HasSuffix(name, "s") {
		return "string[]"
	}
	return "string"
}
