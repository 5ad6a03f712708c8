package dto

import (
	"net/url"
	"strconv"
	"strings"

	"house_rent_web/internal/models"
)

// ====================
//  Request DTOs
// ====================

// SearchForm - форма поиска и пагинация страницы объявлений.
// Поля строковые: пустой <select> или <input> приходит как "" и
// означает "фильтр не задан".
type SearchForm struct {
	ProvinceID     string `form:"province_id" json:"province_id" validate:"omitempty,number"`
	DistrictID     string `form:"district_id" json:"district_id" validate:"omitempty,number"`
	WardID         string `form:"ward_id" json:"ward_id" validate:"omitempty,number"`
	MinPrice       string `form:"min_price" json:"min_price" validate:"omitempty,nonneg"`
	MaxPrice       string `form:"max_price" json:"max_price" validate:"omitempty,nonneg"`
	MinAcreage     string `form:"min_acreage" json:"min_acreage" validate:"omitempty,nonneg"`
	MaxAcreage     string `form:"max_acreage" json:"max_acreage" validate:"omitempty,nonneg"`
	HouseType      string `form:"house_type" json:"house_type" validate:"max=100"`
	ContractPeriod string `form:"contract_period" json:"contract_period" validate:"max=100"`
	Bedrooms       string `form:"bedrooms" json:"bedrooms" validate:"omitempty,number"`
	LivingRooms    string `form:"living_rooms" json:"living_rooms" validate:"omitempty,number"`
	Kitchens       string `form:"kitchens" json:"kitchens" validate:"omitempty,number"`
	Page           int    `form:"page" json:"page" validate:"min=1"`
	IDs            string `form:"ids" json:"ids"`
}

// Normalize подставляет значения по умолчанию и обрезает пробелы
func (f *SearchForm) Normalize() {
	for _, p := range []*string{
		&f.ProvinceID, &f.DistrictID, &f.WardID, &f.MinPrice, &f.MaxPrice,
		&f.MinAcreage, &f.MaxAcreage, &f.HouseType, &f.ContractPeriod,
		&f.Bedrooms, &f.LivingRooms, &f.Kitchens,
	} {
		*p = strings.TrimSpace(*p)
	}
	if f.Page <= 0 {
		f.Page = 1
	}
}

// Query переводит форму в параметры внешнего API
func (f SearchForm) Query(pageSize int) models.HouseRentQuery {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return models.HouseRentQuery{
		ProvinceID:     OptInt(f.ProvinceID),
		DistrictID:     OptInt(f.DistrictID),
		WardID:         OptInt(f.WardID),
		MinPrice:       OptFloat(f.MinPrice),
		MaxPrice:       OptFloat(f.MaxPrice),
		MinAcreage:     OptFloat(f.MinAcreage),
		MaxAcreage:     OptFloat(f.MaxAcreage),
		HouseType:      f.HouseType,
		ContractPeriod: f.ContractPeriod,
		Bedrooms:       OptInt(f.Bedrooms),
		LivingRooms:    OptInt(f.LivingRooms),
		Kitchens:       OptInt(f.Kitchens),
		Limit:          pageSize,
		Offset:         (page - 1) * pageSize,
	}
}

// Values - фильтры формы (без page и ids) для построения ссылок
func (f SearchForm) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("province_id", f.ProvinceID)
	set("district_id", f.DistrictID)
	set("ward_id", f.WardID)
	set("min_price", f.MinPrice)
	set("max_price", f.MaxPrice)
	set("min_acreage", f.MinAcreage)
	set("max_acreage", f.MaxAcreage)
	set("house_type", f.HouseType)
	set("contract_period", f.ContractPeriod)
	set("bedrooms", f.Bedrooms)
	set("living_rooms", f.LivingRooms)
	set("kitchens", f.Kitchens)
	return v
}

// OptInt: "" или мусор -> nil
func OptInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// OptFloat: "" или мусор -> nil
func OptFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
