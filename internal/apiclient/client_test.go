package apiclient

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/internal/testutil"
	"house_rent_web/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitWithWriter("test", io.Discard)
}

func TestHTTPClient_ReferenceLists(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	c := New(api.URL()+"/", 5*time.Second)
	ctx := context.Background()

	amenities, err := c.Amenities(ctx)
	require.NoError(t, err)
	assert.Len(t, amenities, 3)
	assert.Equal(t, "Nội thất: Có", amenities[0].Label())

	types, err := c.HouseTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.HouseType{{Name: "CHUNG CƯ"}, {Name: "PHÒNG TRỌ"}}, types)

	provinces, err := c.Provinces(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hà Nội", provinces[0].Name)

	districts, err := c.Districts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, districts[0].ID)

	wards, err := c.Wards(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 50, wards[0].ID)

	wards, err = c.Wards(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, wards)
}

func TestHTTPClient_SearchSendsFiltersAndPaging(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	c := New(api.URL(), 0)

	minPrice := 3.5
	province := 1
	page, err := c.SearchHouseRent(context.Background(), models.HouseRentQuery{
		ProvinceID: &province,
		MinPrice:   &minPrice,
		HouseType:  "PHÒNG TRỌ",
		Limit:      12,
		Offset:     12,
	})
	require.NoError(t, err)
	assert.Len(t, page, 3, "15 listings, second page of 12")

	q := api.LastSearch()
	assert.Equal(t, "1", q.Get("province_id"))
	assert.Equal(t, "3.5", q.Get("min_price"))
	assert.Equal(t, "PHÒNG TRỌ", q.Get("house_type"))
	assert.Equal(t, "12", q.Get("limit"))
	assert.Equal(t, "12", q.Get("offset"))
	assert.False(t, q.Has("max_price"), "empty filters are not sent")
}

func TestHTTPClient_CompareRoundTrip(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Result = &models.CompareResult{
		RankedHouses: []models.RankedHouse{{
			HouseRent:   models.HouseRent{ID: 1, Title: "A", Price: 5.5, Acreage: 25},
			Rank:        1,
			TopsisScore: 0.7321,
		}},
		IdealBest:  &models.IdealRecord{Price: 5.5},
		IdealWorst: &models.IdealRecord{Price: 5.5},
	}
	c := New(api.URL(), time.Second)

	res, err := c.Compare(context.Background(), models.CompareRequest{
		HouseRentIDs: []int{1, 2},
		Amenities:    []int{9},
		Weights:      []float64{50},
		TopsisWeight: []float64{},
	})
	require.NoError(t, err)
	require.Len(t, res.RankedHouses, 1)
	assert.Equal(t, 0.7321, res.RankedHouses[0].TopsisScore)
	assert.NotNil(t, res.IdealBest)

	assert.JSONEq(t,
		`{"house_rent_ids":[1,2],"amenities":[9],"weights":[50],"topsis_weight":[]}`,
		string(api.LastCompareRaw()))
}

func TestHTTPClient_CompareEmptyArrayResponse(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.RawCompare = "[]"
	c := New(api.URL(), time.Second)

	res, err := c.Compare(context.Background(), models.CompareRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.RankedHouses)
	assert.Nil(t, res.IdealBest)
}

func TestHTTPClient_Errors(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		api := testutil.NewFakeAPI(t)
		api.Fail["/api/item/amenities"] = http.StatusInternalServerError
		c := New(api.URL(), time.Second)

		_, err := c.Amenities(context.Background())
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeUpstreamStatus, appErr.Code)
		assert.Equal(t, "Lỗi API: Internal Server Error", appErr.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		api := testutil.NewFakeAPI(t)
		api.RawCompare = "{not json"
		c := New(api.URL(), time.Second)

		_, err := c.Compare(context.Background(), models.CompareRequest{})
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeUpstreamDecode, appErr.Code)
	})

	t.Run("transport failure", func(t *testing.T) {
		api := testutil.NewFakeAPI(t)
		url := api.URL()
		api.Server.Close()
		c := New(url, time.Second)

		_, err := c.Provinces(context.Background())
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeUpstreamUnavailable, appErr.Code)
	})

	t.Run("cancelled context", func(t *testing.T) {
		api := testutil.NewFakeAPI(t)
		c := New(api.URL(), time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.HouseTypes(ctx)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeUpstreamUnavailable, appErr.Code)
		assert.Equal(t, 0, api.Hits("/api/item/house-types"))
	})
}
