package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers"
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
)

const PathParams = "/params"

func addParamOptionRoutes(rg *gin.RouterGroup, paramHandler *handlers.ParamOptionHandler) {
	params := rg.Group(PathParams)
	{
		params.GET("", paramHandler.ListParamOptions)

		managed := params.Group("", middleware.RequireManager())
		managed.POST("", paramHandler.CreateParamOption)
		managed.DELETE("/:id", paramHandler.DeleteParamOption)
	}
}
