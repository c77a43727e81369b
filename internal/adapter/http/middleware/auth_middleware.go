package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/auth"
	"github.com/vktkrum1/sistema-de-propostas/pkg"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserIDKey  = "auth_user_id"
	CtxUsuarioKey = "auth_usuario"
	CtxRoleKey    = "auth_role"
)

// TokenVerifier verifies a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and records the authenticated user on the gin context.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Credenciais ausentes ou inválidas", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Credenciais ausentes ou inválidas", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(CtxUserIDKey, claims.Subject)
		c.Set(CtxUsuarioKey, claims.Usuario)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireManager gates routes to admin and gestor accounts. It assumes
// RequireAuth already ran.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.UserRole(c.GetString(CtxRoleKey))
		if !role.Manages() {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso restrito a administradores e gestores", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireAdmin gates routes to admin accounts only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if entities.UserRole(c.GetString(CtxRoleKey)) != entities.RoleAdmin {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso restrito a administradores", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
