package middleware

import (
	"net/http"
	"strings"

	"catalog_service/internal/auth"
	"catalog_service/internal/delivery"
	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const claimsKey = "authClaims"

// Authenticate requires a valid bearer token and stores its claims on the
// context for RequireRoles.
func Authenticate(tokens *auth.TokenManager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Middleware: Authorization header is missing")
			delivery.AbortResponse(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			log.Warn("Middleware: Invalid Authorization header format")
			delivery.AbortResponse(c, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			log.Warnf("Middleware: Rejected bearer token: %v", err)
			delivery.AbortResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRoles lets the request through only when the authenticated caller
// holds one of roles. It must run after Authenticate.
func RequireRoles(log *logrus.Logger, roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			log.Warn("Middleware: Role check without authenticated caller")
			delivery.AbortResponse(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			log.Warnf("Middleware: User %d with role %s denied %s %s", claims.UserID, claims.Role, c.Request.Method, c.Request.URL.Path)
			delivery.AbortResponse(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
