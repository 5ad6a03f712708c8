package models

import (
	"net/url"
	"strconv"
)

// Amenity - критерий сравнения (тег окружения объявления)
type Amenity struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Value    string `json:"value"`
}

// Label - подпись строки панели весов: "category: value"
func (a Amenity) Label() string {
	return a.Category + ": " + a.Value
}

// HouseRent - объявление об аренде, как его отдает внешний API
type HouseRent struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Address        string    `json:"address"`
	Price          float64   `json:"price"`   // млн VND в месяц
	Acreage        float64   `json:"acreage"` // м²
	HouseType      string    `json:"house_type,omitempty"`
	ContractPeriod string    `json:"contract_period,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	WardName       string    `json:"ward_name,omitempty"`
	DistrictName   string    `json:"district_name,omitempty"`
	ProvinceName   string    `json:"province_name,omitempty"`
	Bedrooms       *int      `json:"bedrooms,omitempty"`
	LivingRooms    *int      `json:"living_rooms,omitempty"`
	Kitchens       *int      `json:"kitchens,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Environments   []Amenity `json:"environments"`
}

// HouseType - элемент справочника типов жилья
type HouseType struct {
	Name string `json:"name"`
}

// Location - провинция, район или квартал
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HouseRentQuery - параметры /api/search/house-rent.
// Пустые фильтры в запрос не попадают.
type HouseRentQuery struct {
	ProvinceID     *int
	DistrictID     *int
	WardID         *int
	MinPrice       *float64
	MaxPrice       *float64
	MinAcreage     *float64
	MaxAcreage     *float64
	HouseType      string
	ContractPeriod string
	Bedrooms       *int
	LivingRooms    *int
	Kitchens       *int
	Limit          int
	Offset         int
}

// Values собирает query string в том же порядке, что и форма поиска
func (q HouseRentQuery) Values() url.Values {
	v := url.Values{}
	addInt(v, "province_id", q.ProvinceID)
	addInt(v, "district_id", q.DistrictID)
	addInt(v, "ward_id", q.WardID)
	addFloat(v, "min_price", q.MinPrice)
	addFloat(v, "max_price", q.MaxPrice)
	addFloat(v, "min_acreage", q.MinAcreage)
	addFloat(v, "max_acreage", q.MaxAcreage)
	if q.HouseType != "" {
		v.Set("house_type", q.HouseType)
	}
	if q.ContractPeriod != "" {
		v.Set("contract_period", q.ContractPeriod)
	}
	addInt(v, "bedrooms", q.Bedrooms)
	addInt(v, "living_rooms", q.LivingRooms)
	addInt(v, "kitchens", q.Kitchens)
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	return v
}

func addInt(v url.Values, key string, n *int) {
	if n != nil {
		v.Set(key, strconv.Itoa(*n))
	}
}

func addFloat(v url.Values, key string, f *float64) {
	if f != nil {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}
