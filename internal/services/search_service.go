package services

import (
	"context"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/logger"
	"house_rent_web/internal/models"
	"house_rent_web/internal/services/dto"

	"golang.org/x/sync/errgroup"
)

const (
	MsgSearchEmpty  = "Không tìm thấy kết quả nào phù hợp."
	MsgSearchFailed = "Lỗi khi tải dữ liệu. Vui lòng thử lại sau."
)

type SearchService interface {
	// Search загружает одну страницу объявлений
	Search(ctx context.Context, form dto.SearchForm) *SearchPage

	// Filters загружает справочники для формы поиска.
	// Районы и кварталы - только для выбранных провинции и района.
	Filters(ctx context.Context, form dto.SearchForm) *FilterOptions

	PageSize() int
}

// SearchPage - результат одного запроса страницы
type SearchPage struct {
	Listings []models.HouseRent
	Page     int
	PageSize int
	HasPrev  bool
	HasNext  bool
	// Message - "ничего не найдено" или ошибка загрузки; пусто, если есть карточки
	Message string
	Failed  bool
}

// FilterOptions - списки для выпадающих полей формы поиска
type FilterOptions struct {
	HouseTypes []models.HouseType
	Provinces  []models.Location
	Districts  []models.Location
	Wards      []models.Location
}

type searchService struct {
	client   apiclient.Client
	pageSize int
}

func NewSearchService(client apiclient.Client, pageSize int) SearchService {
	return &searchService{
		client:   client,
		pageSize: pageSize,
	}
}

// ================================
// Implementation methods
// ================================

func (s *searchService) PageSize() int { return s.pageSize }

func (s *searchService) Search(ctx context.Context, form dto.SearchForm) *SearchPage {
	form.Normalize()
	page := &SearchPage{
		Page:     form.Page,
		PageSize: s.pageSize,
		HasPrev:  form.Page > 1,
	}

	listings, err := s.client.SearchHouseRent(ctx, form.Query(s.pageSize))
	if err != nil {
		logger.CtxWarn(ctx, "Listing search failed", "error", err, "page", form.Page)
		page.Failed = true
		page.Message = MsgSearchFailed
		// Без данных переходить дальше некуда
		return page
	}

	page.Listings = listings
	// Неполная страница - последняя
	page.HasNext = len(listings) >= s.pageSize
	if len(listings) == 0 {
		page.Message = MsgSearchEmpty
	}
	return page
}

func (s *searchService) Filters(ctx context.Context, form dto.SearchForm) *FilterOptions {
	opts := &FilterOptions{}
	var g errgroup.Group

	// Поля фильтров необязательны: ошибка справочника оставляет список пустым,
	// поэтому горутины всегда возвращают nil
	g.Go(func() error {
		var err error
		if opts.HouseTypes, err = s.client.HouseTypes(ctx); err != nil {
			logger.CtxWarn(ctx, "House types load failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if opts.Provinces, err = s.client.Provinces(ctx); err != nil {
			logger.CtxWarn(ctx, "Provinces load failed", "error", err)
		}
		return nil
	})
	if id := dto.OptInt(form.ProvinceID); id != nil {
		g.Go(func() error {
			var err error
			if opts.Districts, err = s.client.Districts(ctx, *id); err != nil {
				logger.CtxWarn(ctx, "Districts load failed", "error", err, "province_id", *id)
			}
			return nil
		})
	}
	if id := dto.OptInt(form.DistrictID); id != nil {
		g.Go(func() error {
			var err error
			if opts.Wards, err = s.client.Wards(ctx, *id); err != nil {
				logger.CtxWarn(ctx, "Wards load failed", "error", err, "district_id", *id)
			}
			return nil
		})
	}
	_ = g.Wait()
	return opts
}
