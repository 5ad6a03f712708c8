package dto

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// CompareForm - отправленная форма сравнения.
// Чекбоксы приходят как повторяющийся параметр amenity в порядке DOM
// (последний отмеченный - первый), веса - как weight_<id>.
type CompareForm struct {
	IDs        string         `json:"ids"`
	AmenityIDs []int          `json:"amenities"`
	RawWeights map[int]string `json:"weights"`
	ResultPage int            `json:"rpage"`
	// PrevState - состояние страницы, с которой отправлена форма (скрытое поле state)
	PrevState  string         `json:"state"`
}

// ParseCompareForm читает форму из url.Values (query или POST-тело).
// Нечисловые id критериев пропускаются, повторы отбрасываются.
// Страница карточек (rpage) приходит только в ссылках пагинации,
// ее читает обработчик; здесь она всегда 1.
func ParseCompareForm(v url.Values) CompareForm {
	f := CompareForm{
		IDs:        v.Get("ids"),
		RawWeights: make(map[int]string),
		ResultPage: 1,
		PrevState:  v.Get("state"),
	}
	seen := make(map[int]bool)
	for _, raw := range v["amenity"] {
		id, err := strconv.Atoi(raw)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		f.AmenityIDs = append(f.AmenityIDs, id)
		if w, ok := v["weight_"+raw]; ok && len(w) > 0 {
			f.RawWeights[id] = w[0]
		}
	}
	return f
}

// CompareAPIRequest - JSON-вариант формы для /api/v1/compare.
// Веса принимаются как есть (число или строка): невалидное значение
// доходит до builder-а и становится 0, а не ошибкой.
type CompareAPIRequest struct {
	HouseRentIDs []int                   `json:"house_rent_ids" validate:"dive,min=1"`
	Amenities    []int                   `json:"amenities"`
	Weights      map[int]json.RawMessage `json:"weights"`
}

// RawWeightMap приводит веса к тексту поля ввода
func (r CompareAPIRequest) RawWeightMap() map[int]string {
	out := make(map[int]string, len(r.Weights))
	for id, raw := range r.Weights {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[id] = s
			continue
		}
		out[id] = string(raw)
	}
	return out
}
