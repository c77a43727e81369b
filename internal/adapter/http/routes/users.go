package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers"
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
)

const PathUsers = "/users"

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	// Gestão de contas é exclusiva do administrador.
	users := rg.Group(PathUsers, middleware.RequireAdmin())
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}
}
