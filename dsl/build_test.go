package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEndToEnd(t *testing.T) {
	cfg := Config{
		OptionalByDefault: false,
		EmitInterface:     true,
		EmitSchema:        true,
		EmitExample:       true,
	}

	result, err := Build("User email:s password:s isAdmin?:b createdAt:d tags:s[]", cfg)
	require.NoError(t, err)

	assert.Equal(t, "User", result.TypeName)
	require.Len(t, result.Model.Properties, 5)

	expected := []Property{
		{Name: "email", IsRequired: true, ResolvedType: "string"},
		{Name: "password", IsRequired: true, ResolvedType: "string"},
		{Name: "isAdmin", IsRequired: false, ResolvedType: "boolean"},
		{Name: "createdAt", IsRequired: true, ResolvedType: "Date"},
		{Name: "tags", IsRequired: true, ResolvedType: "string[]"},
	}
	assert.Equal(t, expected, result.Model.Properties)

	expectedType := `export type User = {
  email: string;
  password: string;
  isAdmin?: boolean;
  createdAt: Date;
  tags: string[];
};
`
	assert.Equal(t, expectedType, result.TypeText)

	assert.Contains(t, result.InterfaceText, "export interface User {")
	assert.Contains(t, result.SchemaText, "export const UserSchema = z.object({")
	assert.Contains(t, result.SchemaText, "isAdmin: z.boolean().optional(),")

	assert.Contains(t, result.Example, "email")
	assert.Contains(t, result.Example, "password")
	assert.Contains(t, result.Example, "createdAt")
	assert.Contains(t, result.Example, "tags")
	assert.NotContains(t, result.Example, "isAdmin")
}

func TestBuildGatesArtifacts(t *testing.T) {
	cfg := Config{OptionalByDefault: false}

	result, err := Build("User email:s", cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, result.TypeText, "type alias is always produced")
	assert.NotNil(t, result.Model)
	assert.Empty(t, result.InterfaceText)
	assert.Empty(t, result.SchemaText)
	assert.Nil(t, result.Example)
}

func TestBuildStrictSchema(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictSchema = true

	result, err := Build("User email:s", cfg)
	require.NoError(t, err)
	assert.Contains(t, result.SchemaText, "}).strict();")
}

func TestBuildErrorScenarios(t *testing.T) {
	_, err := Build("", DefaultConfig())
	require.Error(t, err)
	var dslErr *Error
	require.ErrorAs(t, err, &dslErr)
	assert.Equal(t, "empty DSL input", dslErr.Message)

	_, err = Build("type:user-email:s", DefaultConfig())
	require.Error(t, err)
	require.ErrorAs(t, err, &dslErr)
	assert.Contains(t, dslErr.Message, "no properties")
}
