package auth

import (
	"net/http"
	"time"

	dto "lucky_slots/internal/api/dto/auth"
	"lucky_slots/internal/api/httperr"
	"lucky_slots/internal/converter"
	"lucky_slots/internal/model"
	"lucky_slots/internal/service"
	"lucky_slots/pkg/req"
	"lucky_slots/pkg/resp"

	"go.uber.org/zap"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	cookiePath         = "/auth"
)

type HandlerDeps struct {
	Serv       service.AuthService
	RefreshTTL time.Duration
	Logger     *zap.Logger
}

type Handler struct {
	serv       service.AuthService
	refreshTTL time.Duration
	logger     *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		refreshTTL: deps.RefreshTTL,
		logger:     deps.Logger,
	}
}

// Register создаёт пользователя, открывает сессию и возвращает access_token.
// session_id и refresh_token уходят в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		httperr.Write(w, h.logger, "register", err)
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToTokenResponse(data))
}

// Login открывает сессию по телефону и паролю
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Phone, requestBody.Password)
	if err != nil {
		httperr.Write(w, h.logger, "login", err)
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTokenResponse(data))
}

// Refresh выпускает новый access_token по cookies session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refreshToken, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionID.Value,
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		httperr.Write(w, h.logger, "refresh", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err = h.serv.Logout(r.Context(), c.Value); err != nil {
		httperr.Write(w, h.logger, "logout", err)
		return
	}

	deleteCookie(w, sessionIDCookie)
	deleteCookie(w, refreshTokenCookie)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(h.refreshTTL.Seconds())
	for name, value := range map[string]string{
		sessionIDCookie:    data.SessionID,
		refreshTokenCookie: data.RefreshToken,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     cookiePath,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
			MaxAge:   maxAge,
		})
	}
}

func deleteCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
