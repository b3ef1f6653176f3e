package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Stake int `json:"stake"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"stake": 50}`))
	require.NoError(t, err)
	assert.Equal(t, 50, got.Stake)

	_, err = Decode[payload](strings.NewReader(``))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader(`{"stake": "fifty"}`))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader(`{"stake": 50, "bet": 10}`))
	assert.Error(t, err)
}
