package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModern(t *testing.T) {
	model, err := Parse("User email:s password:s", DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "User", model.TypeName)
	require.Len(t, model.Properties, 2)
	assert.Equal(t, Property{Name: "email", IsRequired: true, ResolvedType: "string"}, model.Properties[0])
	assert.Equal(t, Property{Name: "password", IsRequired: true, ResolvedType: "string"}, model.Properties[1])
}

func TestParseLegacy(t *testing.T) {
	model, err := Parse("type:user-email:s/password:s", DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "User", model.TypeName)
	require.Len(t, model.Properties, 2)
	assert.Equal(t, Property{Name: "email", IsRequired: true, ResolvedType: "string"}, model.Properties[0])
	assert.Equal(t, Property{Name: "password", IsRequired: true, ResolvedType: "string"}, model.Properties[1])
}

// Both dialects must produce the same model for equivalent input
func TestDialectEquivalence(t *testing.T) {
	legacy, err := Parse("type:user-email:s/password:s", DefaultConfig())
	require.NoError(t, err)
	modern, err := Parse("User email:s password:s", DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, legacy, modern)
}

func TestParseOrderPreserved(t *testing.T) {
	model, err := Parse("Thing alpha:s beta:n gamma:b delta:d", DefaultConfig())
	require.NoError(t, err)

	names := make([]string, 0, len(model.Properties))
	for _, p := range model.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, names)
}

func TestParseRequiredness(t *testing.T) {
	tests := []struct {
		name     string
		dsl      string
		cfg      Config
		required bool
	}{
		{"default is required", "User email:s", DefaultConfig(), true},
		{"question mark makes optional", "User email?:s", DefaultConfig(), false},
		{"legacy o marker makes optional", "type:user-email:s:o/name:s", DefaultConfig(), false},
		{"modern o marker makes optional", "User email:s:o", DefaultConfig(), false},
		{"optional by default", "User email:s", Config{OptionalByDefault: true}, false},
		{"bang overrides optional by default", "User email!:s", Config{OptionalByDefault: true}, true},
		{"bang without type", "User email!", Config{OptionalByDefault: true}, true},
		{"question mark wins over bang", "User email!?:s", DefaultConfig(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Parse(tt.dsl, tt.cfg)
			require.NoError(t, err)
			require.NotEmpty(t, model.Properties)
			assert.Equal(t, tt.required, model.Properties[0].IsRequired)
			assert.Equal(t, "email", model.Properties[0].Name)
		})
	}
}

func TestParseInferenceWithoutType(t *testing.T) {
	model, err := Parse("Post title createdAt isDraft tags", DefaultConfig())
	require.NoError(t, err)

	require.Len(t, model.Properties, 4)
	assert.Equal(t, "string", model.Properties[0].ResolvedType)
	assert.Equal(t, "Date", model.Properties[1].ResolvedType)
	assert.Equal(t, "boolean", model.Properties[2].ResolvedType)
	assert.Equal(t, "string[]", model.Properties[3].ResolvedType)
}

func TestParseModernSeparators(t *testing.T) {
	tests := []struct {
		name string
		dsl  string
	}{
		{"commas", "User, email:s, name:s"},
		{"newlines", "User\nemail:s\nname:s"},
		{"crlf", "User\r\nemail:s\r\nname:s"},
		{"slashes", "User email:s/name:s"},
		{"semicolons", "User email:s; name:s;"},
		{"extra whitespace", "  User   email:s \t name:s "},
		{"quoted tokens", `'User' "email":s name:s`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Parse(tt.dsl, DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, "User", model.TypeName)
			require.Len(t, model.Properties, 2)
			assert.Equal(t, "email", model.Properties[0].Name)
			assert.Equal(t, "name", model.Properties[1].Name)
		})
	}
}

func TestParsePassthroughType(t *testing.T) {
	model, err := Parse("Order id:UUID items:LineItem[]", DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "UUID", model.Properties[0].ResolvedType)
	assert.Equal(t, "LineItem[]", model.Properties[1].ResolvedType)
}

func TestParseSanitizesNames(t *testing.T) {
	model, err := Parse("user-profile first-name:s 123rank:n class:s", DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "UserProfile", model.TypeName)
	assert.Equal(t, "firstName", model.Properties[0].Name)
	assert.Equal(t, "_123rank", model.Properties[1].Name)
	assert.Equal(t, "class_", model.Properties[2].Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		dsl     string
		wantMsg string
	}{
		{"empty input", "", "empty DSL input"},
		{"whitespace only", "   \n  ", "empty DSL input"},
		{"legacy missing separator", "type:useremail", "missing the '-'"},
		{"legacy missing name", "type:-email:s/name:s", "missing a type name"},
		{"legacy chunk missing type", "type:user-email/name:s", "missing a type"},
		{"legacy single segment", "type:user-email:s", "no properties"},
		{"modern no properties", "User", "no properties"},
		{"dangling colon", "User email:", "dangling ':'"},
		{"empty property token", "User ;", "empty property token"},
		{"empty property name", "User ?:s", "property name is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.dsl, DefaultConfig())
			require.Error(t, err)

			var dslErr *Error
			require.ErrorAs(t, err, &dslErr)
			assert.Contains(t, dslErr.Message, tt.wantMsg)
			assert.NotEmpty(t, dslErr.Hint, "every parse error carries a hint")
		})
	}
}

func TestParseErrorCarriesTokenAndIndex(t *testing.T) {
	_, err := Parse("User email:s broken:", DefaultConfig())
	require.Error(t, err)

	var dslErr *Error
	require.ErrorAs(t, err, &dslErr)
	assert.Equal(t, "broken:", dslErr.Token)
	assert.Equal(t, 1, dslErr.Index)
}
