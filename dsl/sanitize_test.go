package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTypeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already pascal", "User", "User"},
		{"lowercase", "user", "User"},
		{"kebab", "user-profile", "UserProfile"},
		{"snake", "user_profile", "UserProfile"},
		{"spaces", "user profile", "UserProfile"},
		{"mixed separators", "api -- v2_response", "ApiV2Response"},
		{"invalid characters stripped", "us@er!", "User"},
		{"empty defaults", "", "Type"},
		{"only junk defaults", "@#%", "Type"},
		{"dollar preserved", "$ref", "$ref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTypeName(tt.input))
		})
	}
}

func TestSanitizeTypeNameIdempotent(t *testing.T) {
	inputs := []string{"User", "user-profile", "api v2", "", "@#%", "type", "123"}
	for _, input := range inputs {
		once := SanitizeTypeName(input)
		assert.Equal(t, once, SanitizeTypeName(once), "input %q", input)
	}
}

func TestSanitizePropertyName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already camel", "firstName", "firstName"},
		{"kebab", "first-name", "firstName"},
		{"snake", "first_name", "firstName"},
		{"spaces", "First Name", "firstName"},
		{"empty defaults", "", "prop"},
		{"only junk defaults", "!!!", "prop"},
		{"leading digit prefixed", "123abc", "_123abc"},
		{"reserved word suffixed", "class", "class_"},
		{"soft reserved word suffixed", "type", "type_"},
		{"reserved primitive suffixed", "string", "string_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizePropertyName(tt.input))
		})
	}
}
