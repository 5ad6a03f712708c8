package apiclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"house_rent_web/internal/cache"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedClient_ReferenceDataFetchedOnce(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	c := NewCachedClient(New(api.URL(), time.Second), cache.NewMemoryCache(16, time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		amenities, err := c.Amenities(ctx)
		require.NoError(t, err)
		assert.Len(t, amenities, 3)

		_, err = c.Districts(ctx, 1)
		require.NoError(t, err)
	}
	_, err := c.Districts(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, api.Hits("/api/item/amenities"))
	assert.Equal(t, 2, api.Hits("/api/locations/districts"), "one fetch per province id")
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Fail["/api/item/house-types"] = http.StatusServiceUnavailable
	c := NewCachedClient(New(api.URL(), time.Second), cache.NewMemoryCache(16, time.Minute))
	ctx := context.Background()

	_, err := c.HouseTypes(ctx)
	require.Error(t, err)

	delete(api.Fail, "/api/item/house-types")
	types, err := c.HouseTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)
	assert.Equal(t, 2, api.Hits("/api/item/house-types"))
}

func TestCachedClient_SearchAndCompareBypassCache(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	c := NewCachedClient(New(api.URL(), time.Second), cache.NewMemoryCache(16, time.Minute))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.SearchHouseRent(ctx, models.HouseRentQuery{Limit: 12})
		require.NoError(t, err)
		_, err = c.Compare(ctx, models.CompareRequest{HouseRentIDs: []int{1, 2}, Amenities: []int{9}, Weights: []float64{50}})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, api.Hits("/api/search/house-rent"))
	assert.Equal(t, 2, api.Hits("/api/dss/compare"))
}

// brokenCache - хранилище, которое всегда отвечает ошибкой
type brokenCache struct{}

func (brokenCache) Get(context.Context, string, any) (bool, error) {
	return false, errors.New("connection refused")
}
func (brokenCache) Set(context.Context, string, any) error { return errors.New("connection refused") }
func (brokenCache) Close() error                           { return nil }

func TestCachedClient_CacheFailureFallsBackToAPI(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("test", &buf)
	t.Cleanup(func() { logger.InitWithWriter("test", io.Discard) })

	api := testutil.NewFakeAPI(t)
	c := NewCachedClient(New(api.URL(), time.Second), brokenCache{})

	amenities, err := c.Amenities(context.Background())
	require.NoError(t, err)
	assert.Len(t, amenities, 3)
	assert.Equal(t, 1, api.Hits("/api/item/amenities"))

	logged := buf.String()
	assert.Contains(t, logged, "[cache:CACHE_ERROR] cache get failed (connection refused)")
	assert.Contains(t, logged, "[cache:CACHE_ERROR] cache set failed (connection refused)")
}
