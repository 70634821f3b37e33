package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		// rule 1: timestamps win over everything else
		{"createdAt", "Date"},
		{"updatedOn", "Date"},
		{"dateOfBirth", "Date"},
		{"birthDate", "Date"},
		{"startDates", "Date"}, // "date" substring beats pluralish

		// rule 2: boolean prefixes
		{"isAdmin", "boolean"},
		{"hasToken", "boolean"},
		{"canEdit", "boolean"},
		{"shouldRetry", "boolean"},
		{"didSync", "boolean"},
		{"wasDeleted", "boolean"},
		{"is_admin", "boolean"},
		// the prefix match is deliberately loose
		{"island", "boolean"},

		// rule 3: identifiers
		{"id", "string"},
		{"userId", "string"},
		{"account_id", "string"},

		// rule 4: pluralish
		{"tags", "string[]"},
		{"members", "string[]"},
		// too short to be pluralish
		{"gas", "string"},

		// rule 5: default
		{"title", "string"},
		{"email", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferType(tt.name))
		})
	}
}
