package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAccount(t *testing.T) {
	acc := NewAccount(500)

	assert.Equal(t, Account{Balance: 500}, acc)
	assert.True(t, acc.Valid())
}

func TestAccountValid(t *testing.T) {
	tests := []struct {
		name string
		acc  Account
		want bool
	}{
		{name: "zero", acc: Account{}, want: true},
		{name: "negative balance", acc: Account{Balance: -1}, want: false},
		{name: "negative free spins", acc: Account{Balance: 10, FreeSpins: -1}, want: false},
		{name: "negative winnings", acc: Account{TotalWinnings: -5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.acc.Valid())
		})
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Hour)}.Expired(now))
}
