package handlers

import (
	"net/http"

	"house_rent_web/internal/apiclient"
	"house_rent_web/internal/selection"
	"house_rent_web/internal/services"
	"house_rent_web/internal/services/dto"
	"house_rent_web/internal/views"

	"github.com/gin-gonic/gin"
)

// APIHandler - JSON-эндпоинты /api/v1: выбор, сравнение, справочники
type APIHandler struct {
	*BaseHandler
	compareService services.CompareService
	client         apiclient.Client
}

func NewAPIHandler(base *BaseHandler, compare services.CompareService, client apiclient.Client) *APIHandler {
	return &APIHandler{
		BaseHandler:    base,
		compareService: compare,
		client:         client,
	}
}

func (h *APIHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/selection/toggle", h.ToggleSelection)
	r.POST("/compare", h.Compare)

	r.GET("/amenities", h.Amenities)
	r.GET("/house-types", h.HouseTypes)

	locations := r.Group("/locations")
	{
		locations.GET("/provinces", h.Provinces)
		locations.GET("/districts", h.Districts)
		locations.GET("/wards", h.Wards)
	}
}

// ToggleSelection переключает id в наборе из ids и возвращает новый набор
func (h *APIHandler) ToggleSelection(c *gin.Context) {
	var req dto.ToggleQuery
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	sel := selection.Parse(req.IDs)
	sel.Toggle(req.ID)

	c.JSON(http.StatusOK, dto.SelectionResponse{
		IDs:        sel.IDs(),
		Encoded:    sel.Encode(),
		Count:      sel.Count(),
		CanCompare: sel.CanCompare(),
		CompareURL: views.CompareURL(sel),
	})
}

// Compare - JSON-вариант формы сравнения, тот же сценарий, что и у страницы
func (h *APIHandler) Compare(c *gin.Context) {
	var req dto.CompareAPIRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	out := h.compareService.Run(c.Request.Context(), dto.CompareForm{
		IDs:        selection.FromIDs(req.HouseRentIDs).Encode(),
		AmenityIDs: req.Amenities,
		RawWeights: req.RawWeightMap(),
		ResultPage: 1,
	})
	if out.Err != nil {
		h.HandleServiceError(c, out.Err)
		return
	}

	c.JSON(http.StatusOK, out.Result)
}

func (h *APIHandler) Amenities(c *gin.Context) {
	list, err := h.client.Amenities(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *APIHandler) HouseTypes(c *gin.Context) {
	list, err := h.client.HouseTypes(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *APIHandler) Provinces(c *gin.Context) {
	list, err := h.client.Provinces(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *APIHandler) Districts(c *gin.Context) {
	var req dto.DistrictsQuery
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	list, err := h.client.Districts(c.Request.Context(), req.ProvinceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *APIHandler) Wards(c *gin.Context) {
	var req dto.WardsQuery
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	list, err := h.client.Wards(c.Request.Context(), req.DistrictID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
