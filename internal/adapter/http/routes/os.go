package routes

import (
	"github.com/rafacrt/studio-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/os"
	PathReports       = "/relatorios"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, osHandler *handlers.ServiceOrderHandler, reportHandler *handlers.ReportHandler) {
	os := rg.Group(PathServiceOrders)
	{
		os.POST("", osHandler.CreateServiceOrder)
		os.GET("", osHandler.ListServiceOrders)
		os.GET("/:id", osHandler.GetServiceOrder)
		os.PATCH("/:id/status", osHandler.UpdateServiceOrderStatus)
		os.PATCH("/:id/urgencia", osHandler.ToggleServiceOrderUrgency)
		os.POST("/:id/duplicar", osHandler.DuplicateServiceOrder)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/os", reportHandler.GetServiceOrderReport)
	}
}
