package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/pkg/apperrors"
)

// Client определяет интерфейс для взаимодействия с внешним DSS API.
// Один метод на эндпоинт; все ошибки - *apperrors.AppError.
type Client interface {
	// Amenities возвращает список критериев сравнения
	Amenities(ctx context.Context) ([]models.Amenity, error)

	// HouseTypes возвращает справочник типов жилья
	HouseTypes(ctx context.Context) ([]models.HouseType, error)

	Provinces(ctx context.Context) ([]models.Location, error)
	Districts(ctx context.Context, provinceID int) ([]models.Location, error)
	Wards(ctx context.Context, districtID int) ([]models.Location, error)

	// SearchHouseRent возвращает одну страницу объявлений
	SearchHouseRent(ctx context.Context, q models.HouseRentQuery) ([]models.HouseRent, error)

	// Compare отправляет запрос на ранжирование
	Compare(ctx context.Context, req models.CompareRequest) (*models.CompareResult, error)
}

const (
	pathAmenities  = "/api/item/amenities"
	pathHouseTypes = "/api/item/house-types"
	pathProvinces  = "/api/locations/provinces"
	pathDistricts  = "/api/locations/districts"
	pathWards      = "/api/locations/wards"
	pathSearch     = "/api/search/house-rent"
	pathCompare    = "/api/dss/compare"
)

// HTTPClient - реализация Client поверх net/http
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// New создает клиент. timeout == 0 оставляет таймаут транспорта по умолчанию.
func New(baseURL string, timeout time.Duration) *HTTPClient {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient позволяет подставить свой *http.Client (тесты, прокси)
func NewWithHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

func (c *HTTPClient) Amenities(ctx context.Context) ([]models.Amenity, error) {
	var out []models.Amenity
	if err := c.getJSON(ctx, pathAmenities, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) HouseTypes(ctx context.Context) ([]models.HouseType, error) {
	var out []models.HouseType
	if err := c.getJSON(ctx, pathHouseTypes, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Provinces(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	if err := c.getJSON(ctx, pathProvinces, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Districts(ctx context.Context, provinceID int) ([]models.Location, error) {
	var out []models.Location
	q := url.Values{"province_id": {strconv.Itoa(provinceID)}}
	if err := c.getJSON(ctx, pathDistricts, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Wards(ctx context.Context, districtID int) ([]models.Location, error) {
	var out []models.Location
	q := url.Values{"district_id": {strconv.Itoa(districtID)}}
	if err := c.getJSON(ctx, pathWards, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SearchHouseRent(ctx context.Context, q models.HouseRentQuery) ([]models.HouseRent, error) {
	var out []models.HouseRent
	if err := c.getJSON(ctx, pathSearch, q.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Compare(ctx context.Context, req models.CompareRequest) (*models.CompareResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("encode compare request: %w", err))
	}

	raw, err := c.do(ctx, http.MethodPost, pathCompare, nil, body)
	if err != nil {
		return nil, err
	}

	// Без house_rent_ids API отвечает пустым массивом вместо объекта
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return &models.CompareResult{RankedHouses: []models.RankedHouse{}}, nil
	}

	var out models.CompareResult
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, apperrors.ErrUpstreamDecode(err, pathCompare)
	}
	if out.RankedHouses == nil {
		out.RankedHouses = []models.RankedHouse{}
	}
	return &out, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperrors.ErrUpstreamDecode(err, path)
	}
	return nil
}

// do выполняет запрос и возвращает тело успешного ответа.
// Повторов нет: ошибка сразу уходит вызывающему.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("build request %s %s: %w", method, path, err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logger.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id := logger.GetCorrelationID(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		appErr := apperrors.ErrUpstreamUnavailable(err, path)
		logger.UpstreamLog(method, path, 0, time.Since(start), appErr)
		return nil, appErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		appErr := apperrors.ErrUpstreamUnavailable(err, path)
		logger.UpstreamLog(method, path, resp.StatusCode, time.Since(start), appErr)
		return nil, appErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := apperrors.ErrUpstreamStatus(resp.StatusCode, path)
		logger.UpstreamLog(method, path, resp.StatusCode, time.Since(start), appErr)
		return nil, appErr
	}

	logger.UpstreamLog(method, path, resp.StatusCode, time.Since(start), nil)
	return raw, nil
}
