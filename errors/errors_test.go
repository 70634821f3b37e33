package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrNoInput, "reading stdin")
	assert.True(t, Is(err, ErrNoInput))
	assert.Contains(t, err.Error(), "reading stdin")
}

func TestHints(t *testing.T) {
	err := WithHint(New("boom"), "try again with --file")
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try again with --file", hints[0])
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(ErrNoInput, "pipe a DSL line on stdin")
	err = Wrap(err, "generate")

	assert.True(t, Is(err, ErrNoInput))
	assert.Contains(t, FlattenHints(err), "pipe a DSL line on stdin")
}

func TestIsInvalidRequestError(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
	assert.False(t, IsInvalidRequestError(New("other")))
	assert.True(t, IsInvalidRequestError(ErrInvalidRequest))
	assert.True(t, IsInvalidRequestError(Wrap(ErrInvalidRequest, "handling /dsl")))
}
