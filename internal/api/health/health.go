package health

import (
	"context"
	"net/http"
	"time"

	"lucky_slots/pkg/resp"
)

// Pinger - зависимость, доступность которой проверяет healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		resp.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
