package services

import (
	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/config"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	SearchService  SearchService
	CompareService CompareService
	// Client нужен JSON-эндпоинтам справочников
	Client apiclient.Client
}

// NewServiceContainer собирает сервисы поверх клиента внешнего API
func NewServiceContainer(client apiclient.Client, cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		SearchService:  NewSearchService(client, cfg.UI.PageSize),
		CompareService: NewCompareService(client, cfg.UI.DefaultWeight),
		Client:         client,
	}
}
