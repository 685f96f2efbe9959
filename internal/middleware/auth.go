package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthRequired rejects requests without a valid session
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// SuperAdminRequired only lets super admins through. Use after AuthRequired.
func SuperAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || !session.User().IsSuperAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Super admin access required"})
			return
		}
		c.Next()
	}
}

// MerchantAccessRequired checks that the session may manage the merchant in the :id path parameter
func MerchantAccessRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || !session.User().CanManageMerchant(c.Param("id")) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have access to this merchant"})
			return
		}
		c.Next()
	}
}
