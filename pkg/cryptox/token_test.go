package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", 16, 22},
		{"256-bit token", TokenSize256, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)
			require.NotContains(t, token, "=")

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestRandomString(t *testing.T) {
	const alphabet = "abc"
	s, err := RandomString(64, alphabet)
	require.NoError(t, err)
	require.Len(t, s, 64)
	for _, r := range s {
		require.True(t, strings.ContainsRune(alphabet, r))
	}

	_, err = RandomString(0, alphabet)
	require.Error(t, err)

	_, err = RandomString(4, "")
	require.Error(t, err)
}
