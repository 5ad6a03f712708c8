package apiclient

import (
	"context"
	"strconv"

	"house_rent_web/internal/cache"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/pkg/apperrors"
)

// CachedClient кэширует справочные эндпоинты. Поиск и сравнение
// всегда идут во внешний API.
type CachedClient struct {
	Client
	cache cache.Cache
}

func NewCachedClient(inner Client, c cache.Cache) *CachedClient {
	return &CachedClient{Client: inner, cache: c}
}

func (c *CachedClient) Amenities(ctx context.Context) ([]models.Amenity, error) {
	return cached(ctx, c.cache, "amenities", func() ([]models.Amenity, error) {
		return c.Client.Amenities(ctx)
	})
}

func (c *CachedClient) HouseTypes(ctx context.Context) ([]models.HouseType, error) {
	return cached(ctx, c.cache, "house_types", func() ([]models.HouseType, error) {
		return c.Client.HouseTypes(ctx)
	})
}

func (c *CachedClient) Provinces(ctx context.Context) ([]models.Location, error) {
	return cached(ctx, c.cache, "provinces", func() ([]models.Location, error) {
		return c.Client.Provinces(ctx)
	})
}

func (c *CachedClient) Districts(ctx context.Context, provinceID int) ([]models.Location, error) {
	return cached(ctx, c.cache, "districts:"+strconv.Itoa(provinceID), func() ([]models.Location, error) {
		return c.Client.Districts(ctx, provinceID)
	})
}

func (c *CachedClient) Wards(ctx context.Context, districtID int) ([]models.Location, error) {
	return cached(ctx, c.cache, "wards:"+strconv.Itoa(districtID), func() ([]models.Location, error) {
		return c.Client.Wards(ctx, districtID)
	})
}

// cached - read-through: ошибки кэша только логируются, ошибки API
// возвращаются и не кэшируются.
func cached[T any](ctx context.Context, c cache.Cache, key string, load func() ([]T, error)) ([]T, error) {
	var out []T
	hit, err := c.Get(ctx, key, &out)
	if err != nil {
		err = apperrors.ErrCache(err, "get")
	}
	logger.CacheLog("get", key, hit, err)
	if err == nil && hit {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, out); err != nil {
		logger.CacheLog("set", key, false, apperrors.ErrCache(err, "set"))
	} else {
		logger.CacheLog("set", key, false, nil)
	}
	return out, nil
}
