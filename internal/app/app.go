package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/cache"
	"house_rent_web/internal/config"
	"house_rent_web/internal/handlers"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/middleware"
	"house_rent_web/internal/routes"
	"house_rent_web/internal/services"
	"house_rent_web/internal/validator"
	"house_rent_web/internal/views"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	refCache, err := cache.NewCache(cacheConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize cache", "error", err, "type", cfg.Cache.Type)
	}
	defer refCache.Close()
	logger.Info("Cache initialized", "type", cfg.Cache.Type)

	client := NewAPIClient(cfg, refCache)
	logger.Info("DSS API client configured", "base_url", cfg.API.BaseURL, "timeout", cfg.Timeout())

	ginRouter := SetupRouter(cfg, client)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

// NewAPIClient - HTTP-клиент внешнего API, справочники через кэш
func NewAPIClient(cfg *config.Config, c cache.Cache) apiclient.Client {
	httpClient := apiclient.New(cfg.API.BaseURL, cfg.Timeout())
	return apiclient.NewCachedClient(httpClient, c)
}

func SetupRouter(cfg *config.Config, client apiclient.Client) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(client, cfg)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter()

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		PageHandler:   handlers.NewPageHandler(baseHandler, services.SearchService, services.CompareService, cfg.UI.ResultPageSize),
		APIHandler:    handlers.NewAPIHandler(baseHandler, services.CompareService, services.Client),
		HealthHandler: handlers.NewHealthHandler(),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.HTMLRender = views.MustLoad()
	return router
}

func cacheConfig(cfg *config.Config) cache.Config {
	return cache.Config{
		Type:          cfg.Cache.Type,
		Size:          cfg.Cache.Size,
		TTL:           cfg.CacheTTL(),
		RedisAddr:     cfg.Cache.RedisAddr,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
	}
}
