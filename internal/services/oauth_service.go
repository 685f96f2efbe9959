package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/alimgiray/menuhub/pkg/config"
	"golang.org/x/oauth2"
)

// OAuthService signs back-office users in against the configured OAuth2 provider
type OAuthService struct {
	oauthConfig *oauth2.Config
	userInfoURL string
}

// OAuthUser is the subset of the provider's userinfo document we use
type OAuthUser struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func NewOAuthService(cfg config.OAuthConfig) *OAuthService {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.AuthURL,
			TokenURL: cfg.TokenURL,
		},
	}

	return &OAuthService{
		oauthConfig: oauthConfig,
		userInfoURL: cfg.UserInfoURL,
	}
}

// NewState returns a random value for the OAuth state parameter
func NewState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GetAuthURL returns the provider authorization URL
func (s *OAuthService) GetAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges authorization code for access token
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo retrieves the signed-in user from the provider
func (s *OAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error) {
	client := s.oauthConfig.Client(ctx, token)

	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var user OAuthUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user data: %w", err)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("userinfo has no email")
	}

	return &user, nil
}
