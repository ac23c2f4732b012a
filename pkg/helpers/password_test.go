package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt hash, got %q", hash)
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)

	assert.True(t, CompareHashAndPassword(hash, "hunter2secret"))
	assert.False(t, CompareHashAndPassword(hash, "wrong-password"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "hunter2secret"))
}
