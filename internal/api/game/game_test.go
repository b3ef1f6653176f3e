package game

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "lucky_slots/internal/api/dto/game"
	"lucky_slots/internal/middleware"
	"lucky_slots/internal/model"
	"lucky_slots/internal/session"
	"lucky_slots/internal/wager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGameService struct {
	spinErr   error
	gotUser   int
	gotStake  int
	gotLimit  int
	spinCalls int
}

func (s *stubGameService) Rules() model.GameRules {
	return model.GameRules{Currency: "KSH", Stakes: []int{10, 50}, RevealDelay: 2 * time.Second}
}

func (s *stubGameService) Spin(_ context.Context, userID, stake int) (*model.SpinResult, error) {
	s.spinCalls++
	s.gotUser, s.gotStake = userID, stake
	if s.spinErr != nil {
		return nil, s.spinErr
	}
	return &model.SpinResult{
		Outcome: model.Outcome{Reels: model.Reels{model.Bell, model.Bell, model.Star}, Payout: 10},
		Stake:   stake,
		Account: model.Account{Balance: 460, TotalWinnings: 10},
	}, nil
}

func (s *stubGameService) History(_ context.Context, userID, limit int) ([]model.SpinRecord, error) {
	s.gotUser, s.gotLimit = userID, limit
	return []model.SpinRecord{{ID: 3, Stake: 50, Reels: model.Reels{model.Seven, model.Bell, model.Star}}}, nil
}

func (s *stubGameService) Stats() model.HouseStats {
	return model.HouseStats{TotalSpins: 1}
}

func authed(r *http.Request, userID int) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}

func TestHandler_Spin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		spinErr    error
		wantStatus int
	}{
		{name: "ok", body: `{"stake": 50}`, wantStatus: http.StatusOK},
		{name: "bad json", body: `{"stake": "a lot"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid stake", body: `{"stake": 7}`, spinErr: fmt.Errorf("%w: 7", wager.ErrInvalidStake), wantStatus: http.StatusBadRequest},
		{name: "insufficient funds", body: `{"stake": 500}`, spinErr: wager.ErrInsufficientFunds, wantStatus: http.StatusPaymentRequired},
		{name: "in progress", body: `{"stake": 10}`, spinErr: session.ErrSpinInProgress, wantStatus: http.StatusConflict},
		{name: "internal", body: `{"stake": 10}`, spinErr: fmt.Errorf("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serv := &stubGameService{spinErr: tt.spinErr}
			h := NewHandler(HandlerDeps{Serv: serv, Logger: zap.NewNop()})

			r := authed(httptest.NewRequest(http.MethodPost, "/game/spin", strings.NewReader(tt.body)), 9)
			w := httptest.NewRecorder()

			h.Spin(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body dto.SpinResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, 9, serv.gotUser)
			assert.Equal(t, 50, serv.gotStake)
			assert.Equal(t, []string{"bell", "bell", "star"}, body.Reels)
			assert.Equal(t, 460, body.Account.Balance)
			assert.Equal(t, int64(2000), body.RevealAfterMs)
		})
	}
}

func TestHandler_Spin_Unauthenticated(t *testing.T) {
	serv := &stubGameService{}
	h := NewHandler(HandlerDeps{Serv: serv, Logger: zap.NewNop()})

	w := httptest.NewRecorder()
	h.Spin(w, httptest.NewRequest(http.MethodPost, "/game/spin", strings.NewReader(`{"stake": 10}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, serv.spinCalls)
}

func TestHandler_History(t *testing.T) {
	serv := &stubGameService{}
	h := NewHandler(HandlerDeps{Serv: serv, Logger: zap.NewNop()})

	w := httptest.NewRecorder()
	h.History(w, authed(httptest.NewRequest(http.MethodGet, "/game/history?limit=5", nil), 4))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, serv.gotLimit)

	var body []dto.HistoryItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, int64(3), body[0].ID)

	w = httptest.NewRecorder()
	h.History(w, authed(httptest.NewRequest(http.MethodGet, "/game/history?limit=-1", nil), 4))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Rules(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubGameService{}, Logger: zap.NewNop()})

	w := httptest.NewRecorder()
	h.Rules(w, httptest.NewRequest(http.MethodGet, "/game/rules", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.RulesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "KSH", body.Currency)
	assert.Equal(t, []int{10, 50}, body.Stakes)
}
