package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/auth"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := auth.NewJWTManager("segredo-de-teste", time.Hour)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/protected", RequireAuth(manager), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id": c.GetString(CtxUserIDKey),
				"role":    c.GetString(CtxRoleKey),
			})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token populates context", func(t *testing.T) {
		token, err := manager.Issue(entities.User{ID: "u1", Usuario: "abilio", Tipo: entities.RoleGestor})
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); body != `{"role":"gestor","user_id":"u1"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})
}

func TestRequireManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role entities.UserRole) *gin.Engine {
		r := gin.New()
		r.GET("/managed", func(c *gin.Context) {
			c.Set(CtxRoleKey, string(role))
		}, RequireManager(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("usuario blocked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/managed", nil)
		w := httptest.NewRecorder()
		newRouter(entities.RoleUsuario).ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("gestor allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/managed", nil)
		w := httptest.NewRecorder()
		newRouter(entities.RoleGestor).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role entities.UserRole) *gin.Engine {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			c.Set(CtxRoleKey, string(role))
		}, RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("gestor blocked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		newRouter(entities.RoleGestor).ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		newRouter(entities.RoleAdmin).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
