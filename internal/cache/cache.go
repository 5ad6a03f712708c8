package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache хранит JSON-сериализуемые значения справочников (критерии, типы жилья, локации).
// Данные неизменяемы в пределах TTL, поэтому инвалидация не нужна.
type Cache interface {
	// Get читает ключ и десериализует его в dest. false - ключа нет.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set сохраняет значение с TTL, заданным при создании кэша
	Set(ctx context.Context, key string, value any) error

	Close() error
}

// Config holds cache configuration
type Config struct {
	Type          string // memory, redis, none
	Size          int    // For memory
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewCache creates a cache instance based on configuration
func NewCache(cfg Config) (Cache, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryCache(cfg.Size, cfg.TTL), nil
	case "redis":
		return NewRedisCache(cfg)
	case "none", "":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// Noop ничего не хранит: каждый Get - промах
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Close() error                                   { return nil }
