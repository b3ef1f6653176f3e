package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "lucky_slots/internal/api/dto/auth"
	"lucky_slots/internal/model"
	"lucky_slots/internal/repository"
	authServ "lucky_slots/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registered *model.User
	refreshed  *model.AuthData
	loggedOut  string
}

func (s *stubAuthService) Register(_ context.Context, user *model.User) (*model.AuthData, error) {
	if user.Phone == "taken" {
		return nil, repository.ErrUserExists
	}
	s.registered = user
	return &model.AuthData{AccessToken: "access", RefreshToken: "refresh", SessionID: "sid"}, nil
}

func (s *stubAuthService) Login(_ context.Context, phone, password string) (*model.AuthData, error) {
	if password != "pw" {
		return nil, authServ.ErrInvalidCredentials
	}
	return &model.AuthData{AccessToken: "access", RefreshToken: "refresh", SessionID: "sid"}, nil
}

func (s *stubAuthService) Refresh(_ context.Context, data *model.AuthData) (string, error) {
	s.refreshed = data
	if data.RefreshToken != "refresh" {
		return "", authServ.ErrInvalidRefreshToken
	}
	return "new-access", nil
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = sessionID
	return nil
}

func (s *stubAuthService) PurgeExpiredSessions(context.Context) (int64, error) {
	return 0, nil
}

func newTestHandler(serv *stubAuthService) *Handler {
	return NewHandler(HandlerDeps{Serv: serv, RefreshTTL: time.Hour, Logger: zap.NewNop()})
}

func TestHandler_Register(t *testing.T) {
	serv := &stubAuthService{}
	h := newTestHandler(serv)

	body := `{"name": "Amani", "phone": "0712", "password": "pw"}`
	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Amani", serv.registered.Name)

	var resp dto.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "access", resp.AccessToken)

	cookies := map[string]string{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c.Value
	}
	assert.Equal(t, "sid", cookies[sessionIDCookie])
	assert.Equal(t, "refresh", cookies[refreshTokenCookie])

	w = httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name": "B", "phone": "taken", "password": "pw"}`)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login(t *testing.T) {
	h := newTestHandler(&stubAuthService{})

	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"phone": "07", "password": "bad"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"phone": "07", "password": "pw"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RefreshLogout(t *testing.T) {
	serv := &stubAuthService{}
	h := newTestHandler(serv)

	w := httptest.NewRecorder()
	h.Refresh(w, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: sessionIDCookie, Value: "sid"})
	r.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: "refresh"})
	w = httptest.NewRecorder()
	h.Refresh(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sid", serv.refreshed.SessionID)

	var resp dto.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "new-access", resp.AccessToken)

	r = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: sessionIDCookie, Value: "sid"})
	w = httptest.NewRecorder()
	h.Logout(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "sid", serv.loggedOut)
}
