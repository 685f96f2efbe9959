package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alimgiray/menuhub/internal/middleware"
	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOAuthProvider(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "access-123",
			"token_type":   "Bearer",
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(services.OAuthUser{Subject: "7", Name: "Boss", Email: "Boss@Example.com"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newAuthRouter(t *testing.T) *gin.Engine {
	s := newTestServer(t)
	provider := newOAuthProvider(t)

	oauth := services.NewOAuthService(config.OAuthConfig{
		ClientID:    "menuhub",
		AuthURL:     provider.URL + "/authorize",
		TokenURL:    provider.URL + "/token",
		UserInfoURL: provider.URL + "/userinfo",
		CallbackURL: "http://localhost:8080/auth/callback",
	})
	handler := NewAuthHandler(services.NewUserService(s.userRepo, []string{"boss@example.com"}), oauth)

	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	router.GET("/auth/login", handler.Login)
	router.GET("/auth/callback", handler.Callback)
	router.GET("/auth/logout", handler.Logout)
	router.GET("/api/me", middleware.AuthRequired(), handler.Me)
	return router
}

func serve(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLoginFlow(t *testing.T) {
	router := newAuthRouter(t)

	w := serve(router, "/auth/login")
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)

	stateCookie := findCookie(w, oauthStateCookie)
	require.NotNil(t, stateCookie)
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", location.Path)
	assert.Equal(t, stateCookie.Value, location.Query().Get("state"))

	w = serve(router, "/auth/callback?code=good-code&state="+url.QueryEscape(stateCookie.Value), stateCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "boss@example.com", body["email"])
	assert.Equal(t, string(models.RoleSuperAdmin), body["role"])

	session := findCookie(w, "session")
	require.NotNil(t, session)

	w = serve(router, "/api/me", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "boss@example.com")

	w = serve(router, "/auth/logout", session)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := findCookie(w, "session")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestCallbackRejects(t *testing.T) {
	router := newAuthRouter(t)
	state := &http.Cookie{Name: oauthStateCookie, Value: "expected"}

	tests := []struct {
		name     string
		path     string
		cookies  []*http.Cookie
		expected int
	}{
		{"no state cookie", "/auth/callback?code=good-code&state=expected", nil, http.StatusBadRequest},
		{"state mismatch", "/auth/callback?code=good-code&state=other", []*http.Cookie{state}, http.StatusBadRequest},
		{"missing code", "/auth/callback?state=expected", []*http.Cookie{state}, http.StatusBadRequest},
		{"exchange fails", "/auth/callback?code=bad-code&state=expected", []*http.Cookie{state}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.path, tt.cookies...)
			assert.Equal(t, tt.expected, w.Code, w.Body.String())
			assert.Nil(t, findCookie(w, "session"))
		})
	}
}
