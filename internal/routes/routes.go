package routes

import (
	"house_rent_web/internal/handlers"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/views"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует HTML-страницы, JSON API и статику.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers, // <-- Принимаем ГОТОВЫЕ хэндлеры
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	// HTML-страницы
	appHandlers.PageHandler.RegisterRoutes(ginRouter)

	// JSON API v1 (для статического скрипта и внешних клиентов)
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.APIHandler.RegisterRoutes(api)
	}

	ginRouter.StaticFS("/static", views.StaticFS())
	logger.Info("Routes registered", "routes", len(ginRouter.Routes()))
}
