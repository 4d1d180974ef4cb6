package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not a bcrypt hash", "anything"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same input")
	require.NoError(t, err)
	b, err := HashPassword("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	h1 := computeRefreshHash("token-abc", "secret-1")
	h2 := computeRefreshHash("token-abc", "secret-1")
	assert.Equal(t, h1, h2)

	assert.NotEqual(t, h1, computeRefreshHash("token-abc", "secret-2"))
	assert.NotEqual(t, h1, computeRefreshHash("token-xyz", "secret-1"))
}
