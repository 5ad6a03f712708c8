package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	PageHandler   *PageHandler
	APIHandler    *APIHandler
	HealthHandler *HealthHandler
}
