package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteToken(t *testing.T) {
	token, err := GenerateInviteToken()
	require.NoError(t, err)
	assert.Len(t, token, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", token)
}

func TestGenerateInviteTokenUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token, err := GenerateInviteToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated")
		seen[token] = struct{}{}
	}
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	out, err := StrSliceToUInt64Slice([]string{"1", "42", "18446744073709551615"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 42, 18446744073709551615}, out)

	_, err = StrSliceToUInt64Slice([]string{"1", "nope"})
	assert.Error(t, err)

	out, err = StrSliceToUInt64Slice(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
