package models

// CompareRequest - тело POST /api/dss/compare.
// Amenities и Weights выровнены по индексу: Weights[i] относится к Amenities[i].
type CompareRequest struct {
	HouseRentIDs []int     `json:"house_rent_ids"`
	Amenities    []int     `json:"amenities"`
	Weights      []float64 `json:"weights"`
	TopsisWeight []float64 `json:"topsis_weight"` // зарезервировано, всегда []
}

// RankedHouse - объявление с метриками, посчитанными на стороне API
type RankedHouse struct {
	HouseRent
	Rank                     int       `json:"rank"`
	AcreageRatio             float64   `json:"acreage_ratio"`
	AmenitiesWeighted        float64   `json:"amenities_w"`
	AmenitiesRatio           float64   `json:"amenities_ratio"`
	TopsisScore              float64   `json:"topsis_score"`
	DistanceToPreferLocation *float64  `json:"distance_to_prefer_location,omitempty"`
	MatchedAmenities         []Amenity `json:"matched_amenities"`
}

// IsMatched сообщает, совпал ли тег с выбранными критериями (по id)
func (h RankedHouse) IsMatched(amenityID int) bool {
	for _, m := range h.MatchedAmenities {
		if m.ID == amenityID {
			return true
		}
	}
	return false
}

// IdealRecord - синтетическая опорная запись (лучшая или худшая)
type IdealRecord struct {
	Price                    float64  `json:"price"`
	Acreage                  float64  `json:"acreage"`
	AcreageRatio             float64  `json:"acreage_ratio"`
	AmenitiesWeighted        float64  `json:"amenities_w"`
	AmenitiesRatio           float64  `json:"amenities_ratio"`
	DistanceToPreferLocation *float64 `json:"distance_to_prefer_location,omitempty"`
}

// CompareResult - ответ /api/dss/compare. Клиент его не изменяет.
type CompareResult struct {
	RankedHouses []RankedHouse `json:"ranked_houses"`
	IdealBest    *IdealRecord  `json:"ideal_best"`
	IdealWorst   *IdealRecord  `json:"ideal_worst"`
}
