package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"house_rent_web/internal/cache"
	"house_rent_web/internal/config"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/middleware"
	"house_rent_web/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer - полный роутер приложения поверх поддельного API
type testServer struct {
	Server *httptest.Server
	API    *testutil.FakeAPI
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard)

	api := testutil.NewFakeAPI(t)

	cfg := config.Default()
	cfg.API.BaseURL = api.URL()
	cfg.Cache.Type = "memory"

	refCache, err := cache.NewCache(cacheConfig(cfg))
	require.NoError(t, err)
	t.Cleanup(func() { _ = refCache.Close() })

	server := httptest.NewServer(SetupRouter(cfg, NewAPIClient(cfg, refCache)))
	t.Cleanup(server.Close)

	return &testServer{Server: server, API: api}
}

func (ts *testServer) SendRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}

func TestSearchToCompareFlow(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/?ids=1", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `<button id="compare-btn"`, "one listing is not enough to compare")

	res, body = ts.SendRequest(t, http.MethodGet, "/?ids=1,2&page=2", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `<a id="compare-btn"`)
	assert.Contains(t, body, "Trang 2")
	assert.Equal(t, "12", ts.API.LastSearch().Get("offset"))

	res, body = ts.SendRequest(t, http.MethodGet, "/compare?ids=1,2", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `name="weight_10"`)

	res, body = ts.SendRequest(t, http.MethodGet, "/compare/result?ids=1,2&amenity=11", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `data-state="rendered"`)
	assert.Equal(t, 1, ts.API.Hits("/api/dss/compare"))
}

func TestReferenceListsAreCached(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 3; i++ {
		res, _ := ts.SendRequest(t, http.MethodGet, "/compare?ids=1,2", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
	}
	assert.Equal(t, 1, ts.API.Hits("/api/item/amenities"))

	for i := 0; i < 2; i++ {
		ts.SendRequest(t, http.MethodGet, "/", nil, nil)
	}
	assert.Equal(t, 1, ts.API.Hits("/api/item/house-types"))
	assert.Equal(t, 1, ts.API.Hits("/api/locations/provinces"))
	assert.Equal(t, 2, ts.API.Hits("/api/search/house-rent"), "search results are never cached")
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/health", nil, nil)
	first := res.Header.Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, first)

	res, _ = ts.SendRequest(t, http.MethodGet, "/health", nil, map[string]string{
		middleware.HeaderCorrelationID: "corr-42",
	})
	second := res.Header.Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, "corr-42", second, "correlation id does not replace request id")
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodOptions, "/api/v1/compare", nil, map[string]string{
		"Origin": "http://example.test",
	})
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestStaticAssets(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/static/app.js", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, strings.Contains(body, "compare-form"))

	res, _ = ts.SendRequest(t, http.MethodGet, "/static/style.css", nil, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUpstreamDownKeepsPagesAlive(t *testing.T) {
	ts := newTestServer(t)
	ts.API.Server.Close()

	res, body := ts.SendRequest(t, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Lỗi khi tải dữ liệu. Vui lòng thử lại sau.")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/compare", map[string]interface{}{
		"house_rent_ids": []int{1, 2},
		"amenities":      []int{9},
	}, nil)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Contains(t, body, "UPSTREAM_UNAVAILABLE")
}
