package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	// Внешний DSS API (поиск, справочники, сравнение)
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Cache struct {
		Type          string `yaml:"type"` // memory, redis, none
		Size          int    `yaml:"size"` // для memory
		TTLSeconds    int    `yaml:"ttl_seconds"`
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
	} `yaml:"cache"`

	UI struct {
		PageSize       int `yaml:"page_size"`        // карточек на странице поиска
		ResultPageSize int `yaml:"result_page_size"` // карточек на странице результата
		DefaultWeight  int `yaml:"default_weight"`
	} `yaml:"ui"`
}

// Timeout возвращает таймаут HTTP-клиента внешнего API
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// CacheTTL возвращает TTL записей кэша справочников
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Address возвращает host:port для запуска сервера
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

var AppConfig *Config

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"

	cfg.API.BaseURL = "http://localhost:8000"
	cfg.API.TimeoutSeconds = 15

	cfg.Cache.Type = "memory"
	cfg.Cache.Size = 256
	cfg.Cache.TTLSeconds = 600
	cfg.Cache.RedisAddr = "localhost:6379"

	cfg.UI.PageSize = 12
	cfg.UI.ResultPageSize = 6
	cfg.UI.DefaultWeight = 50
	return &cfg
}

// Load читает .env (если есть), затем YAML по пути path и применяет
// переопределения из окружения. Отсутствующий файл не ошибка, если
// задан API_BASE_URL (режим "только окружение", как в тестах и контейнерах).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && os.Getenv("API_BASE_URL") != "":
		// режим окружения
	default:
		return nil, fmt.Errorf("open config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.API.BaseURL, "API_BASE_URL")
	setInt(&cfg.API.TimeoutSeconds, "API_TIMEOUT_SECONDS")
	setString(&cfg.Cache.Type, "CACHE_TYPE")
	setString(&cfg.Cache.RedisAddr, "REDIS_ADDR")
	setString(&cfg.Cache.RedisPassword, "REDIS_PASSWORD")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: not an integer", key, v)
		return
	}
	*dst = n
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return errors.New("config: api.base_url is required")
	}
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("config: ui.page_size must be positive, got %d", c.UI.PageSize)
	}
	if c.UI.ResultPageSize <= 0 {
		return fmt.Errorf("config: ui.result_page_size must be positive, got %d", c.UI.ResultPageSize)
	}
	if c.UI.DefaultWeight < 0 || c.UI.DefaultWeight > 100 {
		return fmt.Errorf("config: ui.default_weight must be in [0,100], got %d", c.UI.DefaultWeight)
	}
	switch c.Cache.Type {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("config: unsupported cache type %q", c.Cache.Type)
	}
	return nil
}

// LoadConfig загружает конфигурацию в AppConfig, завершая процесс при ошибке
func LoadConfig() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
