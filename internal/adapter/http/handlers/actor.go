package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
)

// actorFrom reads the authenticated user recorded by the auth middleware.
func actorFrom(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		ID:   c.GetString(middleware.CtxUserIDKey),
		Role: entities.UserRole(c.GetString(middleware.CtxRoleKey)),
	}
}
