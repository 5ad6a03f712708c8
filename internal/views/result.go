package views

import (
	"house_rent_web/internal/models"
)

const (
	MsgNoResult      = "Không có dữ liệu kết quả."
	MsgNoAmenityInfo = "Không có thông tin"
)

// IdealRow - строка таблицы опорных значений: критерий, лучшее, худшее
type IdealRow struct {
	Criterion string
	Best      string
	Worst     string
}

// TagView - тег удобства объявления; Matched - совпал с выбранным критерием
type TagView struct {
	ID      int
	Label   string
	Matched bool
}

// RankedRow - строка таблицы рейтинга (и карточка сетки)
type RankedRow struct {
	ID             int
	Rank           int
	Title          string
	Address        string
	Price          string
	Acreage        string
	AcreageRatio   string
	AmenitiesW     string
	AmenitiesRatio string
	TopsisScore    string
	Distance       string
	Tags           []TagView
}

// ResultView - все, что нужно шаблону результата сравнения
type ResultView struct {
	Empty   bool
	Message string

	HasIdeal     bool
	IdealSection Section
	IdealRows    []IdealRow

	RankedSection Section
	Rows          []RankedRow

	CardsSection Section
	Cards        []RankedRow
	CardsPager   Pager
}

// BuildResultView проецирует ответ API в модель представления.
// Ответ не изменяется. page/pageSize относятся к сетке карточек.
func BuildResultView(result *models.CompareResult, page, pageSize int, link LinkFunc) ResultView {
	if result == nil || len(result.RankedHouses) == 0 {
		return ResultView{Empty: true, Message: MsgNoResult}
	}

	view := ResultView{
		RankedSection: NewSection("ranked", "Kết quả xếp hạng"),
		CardsSection:  NewSection("cards", "Danh sách nhà trọ"),
	}

	if result.IdealBest != nil && result.IdealWorst != nil {
		view.HasIdeal = true
		view.IdealSection = NewSection("ideal", "Tiêu chí lý tưởng và tồi nhất")
		view.IdealRows = buildIdealRows(result.IdealBest, result.IdealWorst)
	}

	view.Rows = make([]RankedRow, 0, len(result.RankedHouses))
	for _, h := range result.RankedHouses {
		view.Rows = append(view.Rows, buildRankedRow(h))
	}

	view.Cards, view.CardsPager = paginate(view.Rows, page, pageSize, link)
	return view
}

func buildIdealRows(best, worst *models.IdealRecord) []IdealRow {
	return []IdealRow{
		{"Giá (triệu)", fixed(best.Price, 2), fixed(worst.Price, 2)},
		{"Diện tích (m²)", fixed(best.Acreage, 2), fixed(worst.Acreage, 2)},
		{"Tỉ lệ diện tích/giá", fixed(best.AcreageRatio, 3), fixed(worst.AcreageRatio, 3)},
		{"Điểm tiện ích", fixed(best.AmenitiesWeighted, 3), fixed(worst.AmenitiesWeighted, 3)},
		{"Tỉ lệ tiện ích/giá", fixed(best.AmenitiesRatio, 3), fixed(worst.AmenitiesRatio, 3)},
	}
}

func buildRankedRow(h models.RankedHouse) RankedRow {
	row := RankedRow{
		ID:             h.ID,
		Rank:           h.Rank,
		Title:          h.Title,
		Address:        h.Address,
		Price:          fixed(h.Price, 2),
		Acreage:        fixed(h.Acreage, 2),
		AcreageRatio:   fixed(h.AcreageRatio, 3),
		AmenitiesW:     fixed(h.AmenitiesWeighted, 3),
		AmenitiesRatio: fixed(h.AmenitiesRatio, 3),
		TopsisScore:    fixed(h.TopsisScore, 4),
		Distance:       optFixed(h.DistanceToPreferLocation, 3),
	}
	for _, env := range h.Environments {
		row.Tags = append(row.Tags, TagView{
			ID:      env.ID,
			Label:   env.Value,
			Matched: h.IsMatched(env.ID),
		})
	}
	return row
}

// paginate режет список на страницы; страница за пределами прижимается к последней
func paginate(rows []RankedRow, page, pageSize int, link LinkFunc) ([]RankedRow, Pager) {
	if pageSize <= 0 {
		pageSize = len(rows)
	}
	pages := (len(rows) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], NewPager(page, page < pages, link)
}
