package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("gizli123")
	require.NoError(t, err)
	assert.NotEqual(t, "gizli123", hash)

	assert.True(t, CheckPasswordHash("gizli123", hash))
	assert.False(t, CheckPasswordHash("yanlis", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("gizli123")
	require.NoError(t, err)
	second, err := HashPassword("gizli123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPasswordHash_EmptyHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("gizli123", ""))
}
