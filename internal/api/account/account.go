package account

import (
	"net/http"
	"strconv"

	dto "lucky_slots/internal/api/dto/account"
	"lucky_slots/internal/api/httperr"
	"lucky_slots/internal/converter"
	"lucky_slots/internal/middleware"
	"lucky_slots/internal/service"
	"lucky_slots/pkg/req"
	"lucky_slots/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.AccountService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.AccountService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger,
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	ov, err := h.serv.Account(r.Context(), userID)
	if err != nil {
		httperr.Write(w, h.logger, "get account", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(ov))
}

// TopUp зачисляет пополнение и возвращает адрес платёжного шлюза
func (h *Handler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.TopUp(r.Context(), userID, payload.Amount)
	if err != nil {
		httperr.Write(w, h.logger, "top-up", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTopUpResponse(result))
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ov, err := h.serv.Withdraw(r.Context(), userID, payload.Amount)
	if err != nil {
		httperr.Write(w, h.logger, "withdraw", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(ov))
}

func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	txs, err := h.serv.Transactions(r.Context(), userID, limit)
	if err != nil {
		httperr.Write(w, h.logger, "transactions", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionsResponse(txs))
}
