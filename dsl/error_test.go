package dsl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatPlain(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			"message only",
			NewError("empty DSL input"),
			"empty DSL input",
		},
		{
			"with token and index",
			NewError("property has a dangling ':' with no type").
				WithToken("email:").WithIndex(2),
			`property has a dangling ':' with no type (token "email:" at position 2)`,
		},
		{
			"with index only",
			NewError("empty property token").WithIndex(0),
			"empty property token (at position 0)",
		},
		{
			"with hint",
			NewError("DSL has no properties").
				WithHint("add at least one property after the type name"),
			"DSL has no properties. Hint: add at least one property after the type name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Format(ErrorContextPlain))
			assert.Equal(t, tt.expected, tt.err.Error(), "Error() uses the plain format")
		})
	}
}

func TestErrorFormatTerminal(t *testing.T) {
	err := NewError("bad token").WithToken("x:").WithIndex(1).WithHint("fix it")
	out := err.Format(ErrorContextTerminal)

	// pterm may or may not emit ANSI codes depending on the environment,
	// so only assert on the structural content
	assert.Contains(t, out, "bad token")
	assert.Contains(t, out, "'x:'")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "fix it")
}

func TestErrorJSONShape(t *testing.T) {
	err := NewError("bad token").WithToken("x:").WithIndex(3).WithHint("fix it")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":"bad token","token":"x:","index":3,"hint":"fix it"}`, string(data))

	// token and hint collapse out when absent; index stays, -1 meaning unknown
	data, marshalErr = json.Marshal(NewError("empty DSL input"))
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":"empty DSL input","index":-1}`, string(data))
}
