package game

import (
	"net/http"
	"strconv"

	dto "lucky_slots/internal/api/dto/game"
	"lucky_slots/internal/api/httperr"
	"lucky_slots/internal/converter"
	"lucky_slots/internal/middleware"
	"lucky_slots/internal/service"
	"lucky_slots/pkg/req"
	"lucky_slots/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.GameService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.GameService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger,
	}
}

func (h *Handler) Rules(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRulesResponse(h.serv.Rules()))
}

// Spin делает спин. Результат уже применён к счёту,
// reveal_after_ms только подсказка клиенту для анимации
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, payload.Stake)
	if err != nil {
		httperr.Write(w, h.logger, "spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result, h.serv.Rules().RevealDelay))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	spins, err := h.serv.History(r.Context(), userID, limit)
	if err != nil {
		httperr.Write(w, h.logger, "spin history", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(spins))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// parseLimit читает ?limit=. Отсутствие параметра даёт 0, сервис подставит значение по умолчанию
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, strconv.ErrSyntax
	}
	return limit, nil
}
