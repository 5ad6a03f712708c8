package dto

// DistrictsQuery - GET /api/v1/locations/districts
type DistrictsQuery struct {
	ProvinceID int `form:"province_id" json:"province_id" validate:"required,min=1"`
}

// WardsQuery - GET /api/v1/locations/wards
type WardsQuery struct {
	DistrictID int `form:"district_id" json:"district_id" validate:"required,min=1"`
}

// ToggleQuery - GET /api/v1/selection/toggle
type ToggleQuery struct {
	IDs string `form:"ids" json:"ids"`
	ID  int    `form:"id" json:"id" validate:"required,min=1"`
}

// SelectionResponse - выбор после переключения
type SelectionResponse struct {
	IDs        []int  `json:"ids"`
	Encoded    string `json:"encoded"`
	Count      int    `json:"count"`
	CanCompare bool   `json:"can_compare"`
	CompareURL string `json:"compare_url"`
}
