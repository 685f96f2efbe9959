package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/pkg/config"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"
	sessionTTL    = 24 * time.Hour
)

type SessionData struct {
	UserID     string      `json:"user_id"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	MerchantID string      `json:"merchant_id,omitempty"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

// User rebuilds the access-relevant part of the signed-in user
func (s *SessionData) User() *models.User {
	user := &models.User{Email: s.Email, Role: s.Role}
	if s.MerchantID != "" {
		merchantID := s.MerchantID
		user.MerchantID = &merchantID
	}
	return user
}

// SessionMiddleware reads the session cookie and slides its expiry on successful responses
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData := getSessionFromCookie(c)
		c.Set("session", sessionData)

		if sessionData != nil {
			c.Writer = &sessionExtender{ResponseWriter: c.Writer, session: *sessionData}
		}

		c.Next()
	}
}

// sessionExtender re-issues the cookie with a fresh expiry right before a
// non-error status is written
type sessionExtender struct {
	gin.ResponseWriter
	session SessionData
	done    bool
}

func (w *sessionExtender) WriteHeader(code int) {
	if !w.done && code > 0 && code < http.StatusBadRequest {
		w.done = true
		w.session.ExpiresAt = time.Now().Add(sessionTTL)
		if value, err := encodeSession(w.session); err == nil {
			http.SetCookie(w, newSessionCookie(value, int(sessionTTL.Seconds())))
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func stopExtending(c *gin.Context) {
	if w, ok := c.Writer.(*sessionExtender); ok {
		w.done = true
	}
}

// getSessionFromCookie extracts and validates session data from cookie
func getSessionFromCookie(c *gin.Context) *SessionData {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	// signature.data
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]
	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var sessionData SessionData
	if err := json.Unmarshal(decodedData, &sessionData); err != nil {
		return nil
	}

	if time.Now().After(sessionData.ExpiresAt) {
		return nil
	}

	return &sessionData
}

// SetSession creates a new session cookie for user
func SetSession(c *gin.Context, user *models.User) error {
	sessionData := SessionData{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if user.MerchantID != nil {
		sessionData.MerchantID = *user.MerchantID
	}

	value, err := encodeSession(sessionData)
	if err != nil {
		return err
	}

	stopExtending(c)
	http.SetCookie(c.Writer, newSessionCookie(value, int(sessionTTL.Seconds())))
	return nil
}

// ClearSession removes the session cookie
func ClearSession(c *gin.Context) {
	stopExtending(c)
	http.SetCookie(c.Writer, newSessionCookie("", -1))
}

func encodeSession(sessionData SessionData) (string, error) {
	data, err := json.Marshal(sessionData)
	if err != nil {
		return "", err
	}
	encodedData := base64.URLEncoding.EncodeToString(data)
	return createSignature(encodedData) + "." + encodedData, nil
}

func newSessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// createSignature creates HMAC signature for data
func createSignature(data string) string {
	h := hmac.New(sha256.New, []byte(config.AppConfig.Session.Secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature verifies HMAC signature
func verifySignature(data, signature string) bool {
	expectedSignature := createSignature(data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get("session")
	if !exists {
		return nil
	}

	if sessionData, ok := session.(*SessionData); ok {
		return sessionData
	}

	return nil
}
