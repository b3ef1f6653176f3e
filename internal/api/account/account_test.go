package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "lucky_slots/internal/api/dto/account"
	"lucky_slots/internal/ledger"
	"lucky_slots/internal/middleware"
	"lucky_slots/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAccountService struct {
	balance int
}

func (s *stubAccountService) Account(context.Context, int) (*model.AccountOverview, error) {
	return &model.AccountOverview{
		Account:         model.Account{Balance: s.balance},
		WithdrawOptions: ledger.DefaultLimits().WithdrawOptions(s.balance),
	}, nil
}

func (s *stubAccountService) TopUp(_ context.Context, _ int, amount int) (*model.TopUpResult, error) {
	acc, err := ledger.ApplyTopUp(model.Account{Balance: s.balance}, amount)
	if err != nil {
		return nil, err
	}
	s.balance = acc.Balance
	return &model.TopUpResult{Account: acc, RedirectURL: "https://pay.example"}, nil
}

func (s *stubAccountService) Withdraw(ctx context.Context, userID, amount int) (*model.AccountOverview, error) {
	acc, err := ledger.ApplyWithdrawal(model.Account{Balance: s.balance}, amount)
	if err != nil {
		return nil, err
	}
	s.balance = acc.Balance
	return s.Account(ctx, userID)
}

func (s *stubAccountService) Transactions(context.Context, int, int) ([]model.Transaction, error) {
	return nil, nil
}

func do(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestHandler_TopUp(t *testing.T) {
	serv := &stubAccountService{balance: 500}
	h := NewHandler(HandlerDeps{Serv: serv, Logger: zap.NewNop()})

	w := do(h.TopUp, http.MethodPost, "/account/top-up", `{"amount": 99}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(h.TopUp, http.MethodPost, "/account/top-up", `{"amount": 100}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.TopUpResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 600, body.Balance)
	assert.Equal(t, "https://pay.example", body.RedirectURL)
}

func TestHandler_Withdraw(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		wantStatus int
		wantAfter  int
	}{
		{name: "below minimum", amount: "598", wantStatus: http.StatusUnprocessableEntity, wantAfter: 1000},
		{name: "over balance", amount: "1001", wantStatus: http.StatusPaymentRequired, wantAfter: 1000},
		{name: "ok", amount: "600", wantStatus: http.StatusOK, wantAfter: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serv := &stubAccountService{balance: 1000}
			h := NewHandler(HandlerDeps{Serv: serv, Logger: zap.NewNop()})

			w := do(h.Withdraw, http.MethodPost, "/account/withdraw", `{"amount": `+tt.amount+`}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAfter, serv.balance)
		})
	}
}

func TestHandler_Get(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubAccountService{balance: 1500}, Logger: zap.NewNop()})

	w := do(h.Get, http.MethodGet, "/account", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.AccountResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1500, body.Balance)
	assert.Equal(t, []int{599, 1000}, body.WithdrawalQuickAmounts)
}

func TestHandler_Transactions_EmptyList(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubAccountService{}, Logger: zap.NewNop()})

	w := do(h.Transactions, http.MethodGet, "/account/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(h.Transactions, http.MethodGet, "/account/transactions?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
