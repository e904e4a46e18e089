package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cane-market/internal/domain/auth"
	"cane-market/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates externally issued access tokens. There is no
// login flow here; tokens come from the auth subsystem signed with a
// shared secret.
type AuthMiddleware struct {
	tokenService *jwt.Service
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			slog.Warn("Token carries an unknown role", "role", claims.Role)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Set("jwt_claims", map[string]any{
			"user_id": actor.UserID.String(),
			"role":    actor.Role.String(),
		})
		c.Next()
	}
}

// RequireShopStaff must be used after RequireAuth(). Which shop the
// staff may manage is checked per request against the path parameter,
// down in the usecase layer.
func (m *AuthMiddleware) RequireShopStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if actor.Role != auth.RoleShopStaff {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetActor(c *gin.Context) (auth.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return auth.Actor{}, false
	}

	actor, ok := v.(auth.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
