package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers"
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
)

const PathEquipments = "/equipments"

func addEquipmentRoutes(rg *gin.RouterGroup, equipmentHandler *handlers.EquipmentHandler) {
	equipments := rg.Group(PathEquipments)
	{
		equipments.GET("", equipmentHandler.ListEquipments)
		equipments.GET("/:id", equipmentHandler.GetEquipment)

		// Alterações de catálogo são restritas a admin e gestor.
		managed := equipments.Group("", middleware.RequireManager())
		managed.POST("", equipmentHandler.CreateEquipment)
		managed.PUT("/:id", equipmentHandler.UpdateEquipment)
		managed.DELETE("/:id", equipmentHandler.DeleteEquipment)
		managed.POST("/:id/image", equipmentHandler.UploadEquipmentImage)
	}
}
