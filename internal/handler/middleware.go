package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/service"
)

const identityKey = "auth_identity"

// AuthMiddleware extracts the bearer token and resolves it to an
// identity. Every failure is reported as a bare 401; the reason is not
// leaked to the caller.
func AuthMiddleware(resolver *service.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		bearer := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), bearer)
		if err != nil {
			writeServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminMiddleware layers the role gate on top of AuthMiddleware. It must
// be registered after it, never instead of it.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := service.RequireAdmin(GetIdentity(c)); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) *model.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(*model.Identity); ok {
			return identity
		}
	}
	return nil
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func writeServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case service.ErrUnauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case service.ErrForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
	case service.ErrConflict:
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
