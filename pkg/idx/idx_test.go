package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/barkeep/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "5cec755218d9"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
	}
}

func TestMonotonicWithinSameMillisecond(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)

	// Same timestamp, entropy must still advance
	require.NotEqual(t, a, b)
	require.Less(t, a.String(), b.String())
}

func TestParseAcceptsCanonicalULID(t *testing.T) {
	id, err := idx.Parse("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV") // any valid ULID
	require.NoError(t, err)
	require.False(t, id.IsZero())
}
