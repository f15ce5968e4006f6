package ids_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/infrastructure/ids"
)

func TestNewGenerator_ReturnsUUIDs(t *testing.T) {
	gen := ids.NewGenerator()
	a, b := gen(), gen()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewShortGenerator_Unique(t *testing.T) {
	gen := ids.NewShortGenerator("p-")
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		id := gen()
		assert.True(t, strings.HasPrefix(id, "p-"))
		assert.Len(t, id, len("p-")+8)
		assert.False(t, seen[id], id)
		seen[id] = true
	}
}
