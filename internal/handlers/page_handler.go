package handlers

import (
	"net/http"
	"net/url"

	"house_rent_web/internal/selection"
	"house_rent_web/internal/services"
	"house_rent_web/internal/services/dto"
	"house_rent_web/internal/views"

	"github.com/gin-gonic/gin"
)

// MsgInvalidFilters показывается вместо карточек, если форма поиска не прошла проверку
const MsgInvalidFilters = "Giá trị bộ lọc không hợp lệ. Vui lòng kiểm tra lại."

// PageHandler рендерит HTML-страницы: поиск, сравнение, результат
type PageHandler struct {
	*BaseHandler
	searchService  services.SearchService
	compareService services.CompareService
	resultPageSize int
}

func NewPageHandler(base *BaseHandler, search services.SearchService, compare services.CompareService, resultPageSize int) *PageHandler {
	return &PageHandler{
		BaseHandler:    base,
		searchService:  search,
		compareService: compare,
		resultPageSize: resultPageSize,
	}
}

func (h *PageHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/compare", h.Compare)
	r.GET("/compare/result", h.CompareResult)
	r.POST("/compare/result", h.CompareResult)
}

// Index - страница поиска: форма, карточки, пагинация, панель выбора
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	var form dto.SearchForm
	status := http.StatusOK
	if err := c.ShouldBindQuery(&form); err != nil {
		// Нечисловой page и т.п.: показываем первую страницу
		form = dto.SearchForm{}
	}
	form.Normalize()
	sel := selection.Parse(c.Query(selection.Param))

	var page *services.SearchPage
	if errs := h.ValidatePage(c, form); errs != nil {
		status = http.StatusBadRequest
		page = &services.SearchPage{Page: form.Page, PageSize: h.searchService.PageSize(), Failed: true, Message: MsgInvalidFilters}
	} else {
		page = h.searchService.Search(ctx, form)
	}

	opts := h.searchService.Filters(ctx, form)
	c.HTML(status, views.PageIndex, views.BuildSearchView(form, page, opts, sel))
}

// Compare - страница сравнения: панель критериев для выбранных ids
func (h *PageHandler) Compare(c *gin.Context) {
	sel := selection.Parse(c.Query(selection.Param))
	panel, flow := h.compareService.LoadPanel(c.Request.Context())
	c.HTML(http.StatusOK, views.PageCompare, views.BuildComparePage(sel, panel, flow))
}

// CompareResult - отправка формы сравнения (GET для пагинации карточек или POST)
func (h *PageHandler) CompareResult(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	values := c.Request.Form
	form := dto.ParseCompareForm(values)
	if p := ParseQueryInt(c, "rpage", 1); p > 1 {
		form.ResultPage = p
	}

	out := h.compareService.Run(c.Request.Context(), form)

	links := url.Values{}
	for k, v := range values {
		if k != "rpage" && k != "state" {
			links[k] = v
		}
	}
	c.HTML(http.StatusOK, views.PageCompare, views.BuildCompareResultPage(out, links, form.ResultPage, h.resultPageSize))
}
