// Package testutil содержит поддельный DSS API для тестов всех слоев.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"house_rent_web/internal/models"

	"github.com/gin-gonic/gin"
)

// FakeAPI - httptest-сервер, повторяющий контракт внешнего API
type FakeAPI struct {
	Server *httptest.Server

	mu sync.Mutex

	AmenityList   []models.Amenity
	HouseTypeList []models.HouseType
	ProvinceList  []models.Location
	DistrictsBy   map[int][]models.Location
	WardsBy       map[int][]models.Location
	Listings      []models.HouseRent
	Result        *models.CompareResult
	// RawCompare, если задан, отдается как тело /api/dss/compare вместо Result
	RawCompare string
	// Fail: путь -> HTTP статус, который вернет сервер
	Fail map[string]int

	hits         map[string]int
	lastCompare  *models.CompareRequest
	lastSearch   url.Values
	rawCompareIn []byte
}

// NewFakeAPI запускает сервер с небольшим набором данных и закрывает его в t.Cleanup
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &FakeAPI{
		AmenityList: []models.Amenity{
			{ID: 9, Category: "Nội thất", Value: "Có"},
			{ID: 10, Category: "An ninh", Value: "Bảo vệ 24/7"},
			{ID: 11, Category: "Chỗ để xe", Value: "Miễn phí"},
		},
		HouseTypeList: []models.HouseType{{Name: "CHUNG CƯ"}, {Name: "PHÒNG TRỌ"}},
		ProvinceList:  []models.Location{{ID: 1, Name: "Hà Nội"}},
		DistrictsBy:   map[int][]models.Location{1: {{ID: 5, Name: "Cầu Giấy"}}},
		WardsBy:       map[int][]models.Location{5: {{ID: 50, Name: "Dịch Vọng"}}},
		Fail:          map[string]int{},
		hits:          map[string]int{},
	}
	for i := 1; i <= 15; i++ {
		f.Listings = append(f.Listings, models.HouseRent{
			ID:           i,
			Title:        "Phòng trọ " + strconv.Itoa(i),
			Address:      "Số " + strconv.Itoa(i) + " Cầu Giấy, Hà Nội",
			Price:        3 + float64(i)/10,
			Acreage:      20 + float64(i),
			HouseType:    "PHÒNG TRỌ",
			Environments: []models.Amenity{{ID: 9, Category: "Nội thất", Value: "Có"}},
		})
	}
	f.Result = &models.CompareResult{RankedHouses: []models.RankedHouse{}}

	f.Server = httptest.NewServer(f.routes())
	t.Cleanup(f.Server.Close)
	return f
}

// URL - базовый адрес сервера
func (f *FakeAPI) URL() string { return f.Server.URL }

// Hits - сколько раз вызывался путь
func (f *FakeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// LastCompare - последнее тело /api/dss/compare (nil, если вызовов не было)
func (f *FakeAPI) LastCompare() *models.CompareRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCompare
}

// LastCompareRaw - сырое тело последнего запроса сравнения
func (f *FakeAPI) LastCompareRaw() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rawCompareIn
}

// LastSearch - query последнего поиска
func (f *FakeAPI) LastSearch() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSearch
}

func (f *FakeAPI) routes() http.Handler {
	r := gin.New()
	r.Use(f.record)

	r.GET("/api/item/amenities", func(c *gin.Context) { c.JSON(http.StatusOK, f.AmenityList) })
	r.GET("/api/item/house-types", func(c *gin.Context) { c.JSON(http.StatusOK, f.HouseTypeList) })
	r.GET("/api/locations/provinces", func(c *gin.Context) { c.JSON(http.StatusOK, f.ProvinceList) })
	r.GET("/api/locations/districts", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Query("province_id"))
		c.JSON(http.StatusOK, orEmpty(f.DistrictsBy[id]))
	})
	r.GET("/api/locations/wards", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Query("district_id"))
		c.JSON(http.StatusOK, orEmpty(f.WardsBy[id]))
	})
	r.GET("/api/search/house-rent", f.search)
	r.POST("/api/dss/compare", f.compare)
	return r
}

func (f *FakeAPI) record(c *gin.Context) {
	f.mu.Lock()
	f.hits[c.Request.URL.Path]++
	status, fail := f.Fail[c.Request.URL.Path]
	f.mu.Unlock()

	if fail {
		c.AbortWithStatusJSON(status, gin.H{"detail": "forced failure"})
		return
	}
	c.Next()
}

func (f *FakeAPI) search(c *gin.Context) {
	q := c.Request.URL.Query()
	f.mu.Lock()
	f.lastSearch = q
	f.mu.Unlock()

	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	if limit <= 0 {
		limit = 10
	}
	if offset > len(f.Listings) {
		offset = len(f.Listings)
	}
	end := offset + limit
	if end > len(f.Listings) {
		end = len(f.Listings)
	}
	c.JSON(http.StatusOK, f.Listings[offset:end])
}

func (f *FakeAPI) compare(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	var req models.CompareRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	f.mu.Lock()
	f.lastCompare = &req
	f.rawCompareIn = raw
	f.mu.Unlock()

	if f.RawCompare != "" {
		c.Data(http.StatusOK, "application/json", []byte(f.RawCompare))
		return
	}
	c.JSON(http.StatusOK, f.Result)
}

func orEmpty(l []models.Location) []models.Location {
	if l == nil {
		return []models.Location{}
	}
	return l
}
