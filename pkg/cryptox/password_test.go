package cryptox_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/barkeep/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("secret12", 4) // min cost, keep the test fast
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt encoding, got %q", hash)

	require.NoError(t, cryptox.VerifyPassword("secret12", hash))
	require.Error(t, cryptox.VerifyPassword("secret13", hash))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("secret12", 4)
	require.NoError(t, err)
	b, err := cryptox.HashPassword("secret12", 4)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestHashPasswordClampsCost(t *testing.T) {
	t.Parallel()

	// Out-of-range costs fall back to the default rather than failing.
	hash, err := cryptox.HashPassword("secret12", -1)
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("secret12", hash))
}

func TestVerifyPasswordRejectsBadEncoding(t *testing.T) {
	t.Parallel()

	require.Error(t, cryptox.VerifyPassword("secret12", "not-a-bcrypt-hash"))
}
