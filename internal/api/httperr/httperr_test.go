package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lucky_slots/internal/ledger"
	"lucky_slots/internal/session"
	"lucky_slots/internal/wager"
	"lucky_slots/pkg/resp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: wager.ErrInsufficientFunds, want: http.StatusPaymentRequired},
		{err: wager.ErrInvalidStake, want: http.StatusBadRequest},
		{err: ledger.ErrInvalidAmount, want: http.StatusUnprocessableEntity},
		{err: ledger.ErrInsufficientBalance, want: http.StatusPaymentRequired},
		{err: session.ErrSpinInProgress, want: http.StatusConflict},
		{err: fmt.Errorf("wrapped: %w", wager.ErrInvalidStake), want: http.StatusBadRequest},
		{err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestWrite_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, zap.NewNop(), "spin", errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body resp.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Internal Server Error", body.Error)
}

func TestWrite_ClientError(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, zap.NewNop(), "withdraw", fmt.Errorf("%w: balance 10, requested 600", ledger.ErrInsufficientBalance))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	var body resp.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "insufficient balance", body.Error)
}
