package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "UserProfile", ToPascalCase("user_profile"))
	assert.Equal(t, "UserProfile", ToPascalCase("user-profile"))
	assert.Equal(t, "User", ToPascalCase("user"))
	assert.Equal(t, "", ToPascalCase(""))
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "userProfile", ToCamelCase("user_profile"))
	assert.Equal(t, "userProfile", ToCamelCase("user-profile"))
	assert.Equal(t, "", ToCamelCase(""))
}

func TestToKebabCase(t *testing.T) {
	assert.Equal(t, "user-profile", ToKebabCase("UserProfile"))
	assert.Equal(t, "user-profile", ToKebabCase("userProfile"))
	assert.Equal(t, "http-server", ToKebabCase("HTTPServer"))
	assert.Equal(t, "user", ToKebabCase("User"))
	assert.Equal(t, "api2-response", ToKebabCase("API2Response"))
}
