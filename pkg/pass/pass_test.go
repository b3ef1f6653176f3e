package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCheck(t *testing.T) {
	hash, err := Hash("qwerty123")
	require.NoError(t, err)

	assert.NotEqual(t, "qwerty123", hash)
	assert.True(t, Check(hash, "qwerty123"))
	assert.False(t, Check(hash, "qwerty124"))
}
