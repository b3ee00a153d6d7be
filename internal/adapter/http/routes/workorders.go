package routes

import (
	"pma_workorders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/workorders"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("", h.List)
		workOrders.POST("", h.Create)
		workOrders.GET("/draft", h.Draft)
		workOrders.GET("/:id", h.Get)
		workOrders.PUT("/:id", h.Update)
		workOrders.DELETE("/:id", h.Delete)
		workOrders.GET("/:id/pdf", h.ExportPDF)
	}
}
