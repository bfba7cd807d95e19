package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/washify/booking/internal/service/auth"
)

const adminClaimsKey = "admin_claims"

// RequireAdmin verifies the Bearer session token on admin routes and stores
// the verified claims in the request context.
func RequireAdmin(service auth.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		claims, err := service.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// AdminClaims returns the verified admin claims set by RequireAdmin.
func AdminClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
