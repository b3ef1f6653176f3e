// Package httperr переводит ошибки сервисов в HTTP ответы
package httperr

import (
	"errors"
	"net/http"

	"lucky_slots/internal/ledger"
	"lucky_slots/internal/repository"
	"lucky_slots/internal/service/auth"
	"lucky_slots/internal/session"
	"lucky_slots/internal/wager"
	"lucky_slots/pkg/resp"

	"go.uber.org/zap"
)

type mapping struct {
	err    error
	status int
}

// Ошибки, которые клиент может исправить сам. Всё остальное - 500
var mappings = []mapping{
	{err: wager.ErrInsufficientFunds, status: http.StatusPaymentRequired},
	{err: wager.ErrInvalidStake, status: http.StatusBadRequest},
	{err: ledger.ErrInvalidAmount, status: http.StatusUnprocessableEntity},
	{err: ledger.ErrInsufficientBalance, status: http.StatusPaymentRequired},
	{err: session.ErrSpinInProgress, status: http.StatusConflict},
	{err: repository.ErrUserExists, status: http.StatusConflict},
	{err: repository.ErrUserNotFound, status: http.StatusNotFound},
	{err: auth.ErrInvalidRegistration, status: http.StatusBadRequest},
	{err: auth.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{err: auth.ErrInvalidRefreshToken, status: http.StatusUnauthorized},
}

// Status возвращает HTTP статус для ошибки
func Status(err error) int {
	if m, ok := find(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// Write пишет ошибку в ответ. Внутренние ошибки логируются и не раскрываются клиенту
func Write(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	m, ok := find(err)
	if !ok {
		logger.Error(op, zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	resp.WriteError(w, m.status, m.err.Error())
}

func find(err error) (mapping, bool) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m, true
		}
	}
	return mapping{}, false
}
