package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn(t *testing.T) {
	env := newTestEnv(t)
	users := NewUserService(env.userRepo, []string{"boss@example.com"})

	staff, err := users.SignIn(&OAuthUser{Name: "Dewi", Email: "Dewi@Example.com"}, "t1")
	require.NoError(t, err)
	assert.Equal(t, "dewi@example.com", staff.Email)
	assert.Equal(t, models.RoleMerchantStaff, staff.Role)

	again, err := users.SignIn(&OAuthUser{Email: "dewi@example.com"}, "t2")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, again.ID)
	assert.Equal(t, "Dewi", again.Name)
	assert.Equal(t, "t2", again.AccessToken)

	admin, err := users.SignIn(&OAuthUser{Name: "Boss", Email: "boss@example.com"}, "t3")
	require.NoError(t, err)
	assert.True(t, admin.IsSuperAdmin())

	merchant, err := env.merchants.CreateMerchant("OWNED", "Owned", "UTC")
	require.NoError(t, err)
	require.NoError(t, users.AssignMerchant(staff, merchant.ID, models.RoleMerchantOwner))

	stored, err := users.GetUserByEmail("DEWI@example.com")
	require.NoError(t, err)
	assert.True(t, stored.CanManageMerchant(merchant.ID))
	assert.False(t, stored.CanManageMerchant("other"))
}

func TestOAuthServiceFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "access-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(OAuthUser{Subject: "42", Name: "Dewi", Email: "dewi@example.com"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := NewOAuthService(config.OAuthConfig{
		ClientID:    "client",
		AuthURL:     server.URL + "/authorize",
		TokenURL:    server.URL + "/token",
		UserInfoURL: server.URL + "/userinfo",
		CallbackURL: "http://localhost/auth/callback",
	})

	authURL, err := url.Parse(svc.GetAuthURL("state-1"))
	require.NoError(t, err)
	assert.Equal(t, "state-1", authURL.Query().Get("state"))
	assert.Equal(t, "client", authURL.Query().Get("client_id"))

	ctx := context.Background()
	token, err := svc.ExchangeCodeForToken(ctx, "the-code")
	require.NoError(t, err)
	assert.Equal(t, "access-123", token.AccessToken)

	user, err := svc.GetUserInfo(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "dewi@example.com", user.Email)

	state, err := NewState()
	require.NoError(t, err)
	other, err := NewState()
	require.NoError(t, err)
	assert.NotEqual(t, state, other)
}
