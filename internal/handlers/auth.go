package handlers

import (
	"net/http"

	"github.com/alimgiray/menuhub/internal/middleware"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	userService  *services.UserService
	oauthService *services.OAuthService
}

func NewAuthHandler(userService *services.UserService, oauthService *services.OAuthService) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		oauthService: oauthService,
	}
}

// Login starts the OAuth flow
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := services.NewState()
	if err != nil {
		respondError(c, err, "Failed to start login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/auth", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetAuthURL(state))
}

// Callback finishes the OAuth flow and opens a session
func (h *AuthHandler) Callback(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		badRequest(c, "Invalid OAuth state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/auth", "", false, true)

	code := c.Query("code")
	if code == "" {
		badRequest(c, "Missing authorization code")
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.WithError(err).Warn("OAuth token exchange failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token exchange failed"})
		return
	}

	info, err := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.WithError(err).Warn("OAuth user info failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch user info"})
		return
	}
	if info.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Provider did not return an email"})
		return
	}

	user, err := h.userService.SignIn(info, token.AccessToken)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	if err := middleware.SetSession(c, user); err != nil {
		respondError(c, err, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID.String(),
		"email":       user.Email,
		"role":        user.Role,
		"merchant_id": user.MerchantID,
	})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the signed-in session
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetSession(c))
}
