package cryptox_test

import (
	"testing"

	"github.com/aussiebroadwan/barkeep/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	a, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.Len(t, a, 43) // 32 bytes base64url, no padding

	b, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	_, err = cryptox.GenerateToken(0)
	require.Error(t, err)
}

func TestFingerprintTokenIsDeterministic(t *testing.T) {
	t.Parallel()

	token := cryptox.MustGenerateToken(cryptox.TokenSize128)

	fp1 := cryptox.FingerprintToken(token)
	fp2 := cryptox.FingerprintToken(token)
	require.Equal(t, fp1, fp2)
	require.NotEqual(t, token, fp1)
	require.Len(t, fp1, 43)
}
