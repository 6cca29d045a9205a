package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Записи хранилища; удаление только по API-ключу
	records := api.Group("/records")
	{
		records.GET("", h.listRecords)
		records.GET("/count", h.countRecords)
		records.DELETE("/:id", auth, h.deleteRecord)
		records.DELETE("", auth, h.deleteAllRecords)
	}

	// Фоновый импорт выгрузок
	imports := api.Group("/imports")
	{
		imports.POST("", auth, h.createImport)
		imports.POST("/upload", auth, h.uploadImport)
		imports.GET("/:id", h.getImport)
	}

	// Поиск заменяет текущую выборку
	search := api.Group("/search")
	{
		search.POST("/radius", h.searchRadius)
		search.POST("/address", h.searchAddress)
		search.POST("/all", h.searchAll)
	}

	// Обмен с виджетом карты
	route := api.Group("/route")
	{
		route.POST("/candidates", h.routeCandidates)
		route.POST("/selection", h.routeSelection)
		route.POST("/waypoints", h.routeWaypoints)
	}

	// Текущая выборка
	view := api.Group("/view")
	{
		view.POST("/filters", h.applyFilters)
		view.GET("/page", h.viewPage)
		view.GET("/markers", h.viewMarkers)
		view.GET("/advisory", h.viewAdvisory)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
