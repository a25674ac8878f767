package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := generateID()
		require.NoError(t, err)
		require.Len(t, id, idLength)
		for _, c := range id {
			assert.Contains(t, idAlphabet, string(c))
		}
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	// 100 draws from a 62^6 space; a duplicate here means a broken generator,
	// not bad luck.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := generateID()
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
