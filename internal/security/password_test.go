package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_LengthBounds(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)

	_, err = HashPassword(strings.Repeat("x", 72))
	assert.NoError(t, err)
}

func TestNewToken_UniqueAndURLSafe(t *testing.T) {
	a, err := NewToken(32)
	require.NoError(t, err)
	b, err := NewToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
	assert.NotContains(t, a, "=")
}
